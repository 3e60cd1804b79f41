package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPathsWithRestriction(t *testing.T) {
	var g Graph[string]
	g.AddEdge("start", "a", 1)
	g.AddEdge("start", "b", 1)
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "end", 1)
	g.AddEdge("b", "end", 1)

	simple := func(x string, visited map[string]int) bool { return visited[x] == 0 }
	// start-a-end, start-b-end, start-a-b-end, start-b-a-end
	assert.Equal(t, 4, g.NumPathsWithRestriction("start", "end", simple))
	assert.Equal(t, map[string]bool{"start": true, "a": true, "b": true, "end": true}, g.ReachableNodes("start"))

	n := g.NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		return x != "b" && visited[x] == 0
	})
	assert.Equal(t, 1, n)
}

func TestShortestPath(t *testing.T) {
	// 0 -1-> 1 -1-> 2 -1-> 3, plus a direct 0 -5-> 3.
	next := func(n int, yield func(int, int)) {
		if n < 3 {
			yield(n+1, 1)
		}
		if n == 0 {
			yield(3, 5)
		}
	}
	d, ok := ShortestPath(0, next, func(n int) bool { return n == 3 })
	assert.True(t, ok)
	assert.Equal(t, 3, d)

	_, ok = ShortestPath(0, next, func(n int) bool { return n == 4 })
	assert.False(t, ok)
}

func TestInitMap(t *testing.T) {
	var m map[string]int
	InitMap(&m)
	m["x"] = 1
	InitMap(&m)
	assert.Equal(t, map[string]int{"x": 1}, m)
}
