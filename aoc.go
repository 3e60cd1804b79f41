// Package aoc is a small runner plus quick & dirty helpers for solving
// Advent of Code puzzles. (forked from bradfitz/aoc)
//
// Solutions are methods named D{day}p{part} on a struct embedding
// *Puzzle. A method's doc comment may carry its sample:
//
//	/*
//	want=7
//
//		199
//		200
//	*/
//	func (s solver) D1p1() (any, error)
//
// The input is indented by a tab so that gofmt leaves it alone. A want=
// line without input reuses the previous method's sample input.
package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

// parseSample extracts a sample from a method's doc comment: a want=
// line, optionally followed by the sample input as an indented block
// (the form gofmt keeps doc comment code blocks in). One tab of
// indentation is removed from every input line.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	head, rest, _ := strings.Cut(strings.TrimLeft(text, " \t\n"), "\n")
	want, ok := strings.CutPrefix(strings.TrimSpace(head), "want=")
	if !ok {
		return sample{}, false
	}
	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimPrefix(line, "\t"), " \t\r")
	}
	input := strings.Trim(strings.Join(lines, "\n"), "\n")
	if input != "" {
		input += "\n"
	}
	return sample{want: strings.TrimSpace(want), input: input}, true
}

func extractSamples(filename string, src []byte, samples map[string]sample) error {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, filename, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				if s.input == "" {
					s.input = lastInput
				}
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return nil
}

// Puzzle is a solver's view of the part being run.
type Puzzle struct {
	day   int
	part  string
	input []byte
	log   *zap.SugaredLogger
}

// NewPuzzle returns a Puzzle over input that logs nowhere. Year.Solve
// builds its own; this is for calling parsers directly.
func NewPuzzle(input []byte) *Puzzle {
	return &Puzzle{input: input, log: zap.NewNop().Sugar()}
}

func (p *Puzzle) Day() int     { return p.day }
func (p *Puzzle) Part() string { return p.part }

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	return Lines(p.input)
}

// Paragraphs returns the input split into blank-line separated blocks.
func (p *Puzzle) Paragraphs() []Paragraph {
	return Paragraphs(p.input)
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0. An error returned by
// onLine stops the iteration and is annotated with the line number.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	for y, line := range p.Lines() {
		if err := onLine(y, line); err != nil {
			return AtLine(err, y+1)
		}
	}
	return nil
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

func (p *Puzzle) Logger() *zap.SugaredLogger {
	return p.log
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debugf(format, args...)
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var (
	methodRx   = regexp.MustCompile(`^D(\d+)p(\d+)$`)
	solverFunc = reflect.TypeOf((func() (any, error))(nil))
	puzzleType = reflect.TypeOf((*Puzzle)(nil))
)

// extractMethods finds the methods of the struct pointed to by x named
// D{day}p{part}. They must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	if f, ok := vt.FieldByName("Puzzle"); !ok || f.Type != puzzleType {
		return nil, fmt.Errorf("solver: %v does not embed *aoc.Puzzle", vt)
	}
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt := v.Method(i).Type(); mt != solverFunc {
			return nil, fmt.Errorf("solver: %s has type %v; want %v", mn, mt, solverFunc)
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, err
		}
		part := strings.TrimLeft(matches[2], "0")
		byDays[d] = append(byDays[d], partSolver{
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Year is the set of solutions for one Advent of Code year.
type Year struct {
	year    int
	solver  reflect.Value // pointer to the solver struct
	days    map[int]day
	titles  map[int]string
	samples map[string]sample
}

// NewYear registers the solver methods of slvr, a pointer to a struct
// embedding *Puzzle. Samples are read from the doc comments of the Go
// files in sources.
func NewYear(year int, sources fs.FS, slvr any, titles map[int]string) (*Year, error) {
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	samples := make(map[string]sample)
	files, err := fs.Glob(sources, "*.go")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		src, err := fs.ReadFile(sources, name)
		if err != nil {
			return nil, err
		}
		if err := extractSamples(name, src, samples); err != nil {
			return nil, err
		}
	}
	return &Year{
		year:    year,
		solver:  reflect.ValueOf(slvr),
		days:    days,
		titles:  titles,
		samples: samples,
	}, nil
}

func (y *Year) Year() int { return y.year }

// Days returns the registered days in order.
func (y *Year) Days() []int {
	ds := maps.Keys(y.days)
	slices.Sort(ds)
	return ds
}

// Title returns the puzzle title of day d, or "" if unknown.
func (y *Year) Title(d int) string {
	return y.titles[d]
}

// Parts returns the part names of day d in order.
func (y *Year) Parts(d int) []string {
	var out []string
	for _, ps := range y.days[d].parts {
		out = append(out, ps.Part)
	}
	return out
}

// Sample returns the sample input and expected answer of a part.
func (y *Year) Sample(d int, part string) (input, want string, ok bool) {
	for _, ps := range y.days[d].parts {
		if ps.Part == part {
			s, ok := y.samples[ps.Name]
			return s.input, s.want, ok
		}
	}
	return "", "", false
}

// NormalizePart maps the accepted spellings of a part ("1", "one", "2",
// "two") to the part name. The empty string stays empty, meaning all
// parts.
func NormalizePart(part string) (string, error) {
	switch strings.ToLower(part) {
	case "":
		return "", nil
	case "1", "one":
		return "1", nil
	case "2", "two":
		return "2", nil
	}
	return "", Usagef("invalid part %q; want one of one, two, 1, 2", part)
}

// RunOptions controls a call to Year.Solve.
type RunOptions struct {
	Part   string // "" runs every part
	Input  []byte // ignored in sample mode
	Sample bool   // run against the embedded samples instead of Input
	Logger *zap.Logger
}

// Result is the outcome of running one part.
type Result struct {
	Day    int
	Part   string
	Answer any
	Took   time.Duration

	Sample   bool
	Want     string // expected sample answer
	NoSample bool   // sample mode, but the part has no sample
}

// OK reports whether the answer matches the sample. It is always true
// outside of sample mode.
func (r Result) OK() bool {
	if !r.Sample || r.NoSample {
		return true
	}
	return fmt.Sprint(r.Answer) == r.Want
}

// Solve runs the selected parts of day d. It stops at the first part
// that returns an error and returns the results gathered so far.
func (y *Year) Solve(d int, opts RunOptions) ([]Result, error) {
	dy, ok := y.days[d]
	if !ok {
		return nil, Usagef("no solution for day %d", d)
	}
	part, err := NormalizePart(opts.Part)
	if err != nil {
		return nil, err
	}
	if part != "" && !slices.Contains(y.Parts(d), part) {
		return nil, Usagef("day %d has no part %s", d, part)
	}
	if !opts.Sample && blank(opts.Input) {
		return nil, ParseErrorf("", "empty input")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for _, ps := range dy.parts {
		if part != "" && ps.Part != part {
			continue
		}
		res := Result{Day: d, Part: ps.Part, Sample: opts.Sample}
		input := opts.Input
		if opts.Sample {
			s, ok := y.samples[ps.Name]
			if !ok {
				res.NoSample = true
				results = append(results, res)
				continue
			}
			input = []byte(s.input)
			res.Want = s.want
		}
		p := &Puzzle{
			day:   d,
			part:  ps.Part,
			input: input,
			log:   logger.Sugar().With("day", d, "part", ps.Part),
		}
		t0 := time.Now()
		res.Answer, err = y.call(ps, p)
		res.Took = time.Since(t0)
		if err != nil {
			return results, fmt.Errorf("day %d part %s: %w", d, ps.Part, err)
		}
		p.log.Debugw("solved", "took", res.Took.Round(time.Microsecond), "sample", opts.Sample)
		results = append(results, res)
	}
	return results, nil
}

// call runs one solver method on a copy of the solver struct whose
// Puzzle field is set to p.
func (y *Year) call(ps partSolver, p *Puzzle) (any, error) {
	sv := reflect.New(y.solver.Elem().Type())
	sv.Elem().Set(y.solver.Elem())
	sv.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	fn := sv.Elem().MethodByName(ps.Name).Interface().(func() (any, error))
	return fn()
}
