// Package maze generates perfect mazes and solves them.
package maze

import (
	"context"
	"math/rand/v2"
	"strings"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	configFile = "maze_config.json"
	resultFile = "maze_result.json"
)

type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   uint64 `json:"seed"` // 0 picks a random seed
}

func DefaultConfig() Config { return Config{Width: 10, Height: 8} }

func (c *Config) Validate() error {
	if c.Width < 2 || c.Width > 100 || c.Height < 2 || c.Height > 100 {
		return domain.Invalid("maze.validate", "width and height must be within 2..100, got %dx%d", c.Width, c.Height)
	}
	return nil
}

type Result struct {
	domain.Stamp
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Seed       uint64   `json:"seed"`
	PathLength int      `json:"path_length"`
	Rows       []string `json:"rows"`
}

// Cell is a grid coordinate.
type Cell struct{ Row, Col int }

// Grid holds walls on a (2h+1)x(2w+1) lattice; true is a wall.
type Grid [][]bool

// Generate carves a perfect maze of width x height cells using a randomized
// depth-first search.
func Generate(r *rand.Rand, width, height int) Grid {
	g := make(Grid, 2*height+1)
	for i := range g {
		g[i] = make([]bool, 2*width+1)
		for j := range g[i] {
			g[i][j] = true
		}
	}

	visited := make([][]bool, height)
	for i := range visited {
		visited[i] = make([]bool, width)
	}
	dirs := []Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	stack := []Cell{{0, 0}}
	visited[0][0] = true
	g[1][1] = false
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []Cell
		for _, d := range dirs {
			n := Cell{cur.Row + d.Row, cur.Col + d.Col}
			if n.Row >= 0 && n.Row < height && n.Col >= 0 && n.Col < width && !visited[n.Row][n.Col] {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[r.IntN(len(next))]
		visited[n.Row][n.Col] = true
		g[2*n.Row+1][2*n.Col+1] = false
		g[cur.Row+n.Row+1][cur.Col+n.Col+1] = false // wall between cur and n
		stack = append(stack, n)
	}
	return g
}

// Solve finds the shortest path from the top-left cell to the bottom-right
// cell by breadth-first search. It returns nil when no path exists.
func Solve(g Grid) []Cell {
	if len(g) < 3 {
		return nil
	}
	start := Cell{1, 1}
	goal := Cell{len(g) - 2, len(g[0]) - 2}

	prev := map[Cell]Cell{start: start}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, d := range []Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := Cell{cur.Row + d.Row, cur.Col + d.Col}
			if g[n.Row][n.Col] {
				continue
			}
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	if _, ok := prev[goal]; !ok {
		return nil
	}
	var path []Cell
	for c := goal; c != start; c = prev[c] {
		path = append(path, c)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Render draws walls as '#', the path as '.', and open floor as ' '.
func Render(g Grid, path []Cell) []string {
	on := make(map[Cell]bool, len(path))
	for _, c := range path {
		on[c] = true
	}
	rows := make([]string, len(g))
	for i, row := range g {
		var b strings.Builder
		for j, wall := range row {
			switch {
			case wall:
				b.WriteByte('#')
			case on[Cell{i, j}]:
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		rows[i] = b.String()
	}
	return rows
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "maze" }

func (m *Module) Summary() string { return "Maze generator and solver" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	cfg, _, err := store.LoadOrInit(env.Results.Path(configFile), DefaultConfig)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = env.Rand.Uint64()
	}
	g := Generate(rand.New(rand.NewPCG(seed, seed)), cfg.Width, cfg.Height)
	path := Solve(g)

	res := Result{
		Stamp:      env.NewStamp(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Seed:       seed,
		PathLength: len(path),
		Rows:       Render(g, path),
	}

	ui := console.New(env.Out, env.Locale)
	ui.Title("Maze")
	for _, row := range res.Rows {
		ui.Linef("%s", row)
	}
	ui.Field("Seed", res.Seed)
	ui.Field("Path length", res.PathLength)

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
