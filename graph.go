package aoc

// Graph is an undirected graph with integer edge weights.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

// NumPathsWithRestriction counts the paths from start to end where
// every step to a node x is allowed by canVisit, which is given how
// many times each node is on the path so far.
func (g *Graph[K]) NumPathsWithRestriction(start, end K, canVisit func(x K, alreadyVisited map[K]int) bool) int {
	return g.numPathsHelper(start, end, canVisit, make(map[K]int))
}

func (g *Graph[K]) numPathsHelper(start, end K, canVisit func(x K, alreadyVisited map[K]int) bool, visited map[K]int) int {
	if start == end {
		return 1
	}
	visited[start]++
	defer func() {
		visited[start]--
	}()
	count := 0
	for k := range g.Edges[start] {
		if canVisit(k, visited) {
			count += g.numPathsHelper(k, end, canVisit, visited)
		}
	}
	return count
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// ShortestPath runs Dijkstra's algorithm from start over the implicit
// graph described by next, which calls yield for every neighbor of a
// state together with the non-negative cost of the step. It returns
// the cost of the cheapest path to a state for which done reports
// true, and false if no such state is reachable.
func ShortestPath[S comparable](start S, next func(s S, yield func(S, int)), done func(S) bool) (int, bool) {
	dist := map[S]int{start: 0}
	q := MinQueue[S]()
	q.Push(&PQI[S]{V: start, P: 0})
	for q.Len() > 0 {
		cur := q.Pop()
		if d, ok := dist[cur.V]; ok && cur.P > d {
			continue // stale entry
		}
		if done(cur.V) {
			return cur.P, true
		}
		next(cur.V, func(n S, cost int) {
			nd := cur.P + cost
			if d, ok := dist[n]; ok && d <= nd {
				return
			}
			dist[n] = nd
			q.Push(&PQI[S]{V: n, P: nd})
		})
	}
	return 0, false
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
