// Package shapes measures area and perimeter over a closed set of shape kinds.
package shapes

import (
	"context"
	"fmt"
	"math"

	"toolbox/internal/console"
	"toolbox/internal/domain"
	"toolbox/internal/store"
)

const (
	inputFile  = "shapes.json"
	resultFile = "shapes_result.json"
)

// Kind tags which variant a Shape is.
type Kind string

const (
	Circle    Kind = "circle"    // dims: radius
	Square    Kind = "square"    // dims: side
	Rectangle Kind = "rectangle" // dims: width, height
	Triangle  Kind = "triangle"  // dims: a, b, c
)

// arity is the number of dimensions each kind takes.
var arity = map[Kind]int{Circle: 1, Square: 1, Rectangle: 2, Triangle: 3}

// Shape is a tagged union: Kind selects how Dims is read.
type Shape struct {
	Name string    `json:"name,omitempty"`
	Kind Kind      `json:"kind"`
	Dims []float64 `json:"dims"`
}

// Input is the seeded list of shapes to measure.
type Input struct {
	Shapes []Shape `json:"shapes"`
}

func DefaultInput() Input {
	return Input{Shapes: []Shape{
		{Name: "plate", Kind: Circle, Dims: []float64{1}},
		{Name: "tile", Kind: Square, Dims: []float64{2}},
		{Name: "door", Kind: Rectangle, Dims: []float64{0.9, 2.1}},
		{Name: "sail", Kind: Triangle, Dims: []float64{3, 4, 5}},
	}}
}

// Measurement is the outcome for one shape.
type Measurement struct {
	Shape     Shape   `json:"shape"`
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
	Error     string  `json:"error,omitempty"`
}

type Result struct {
	domain.Stamp
	Measurements []Measurement `json:"measurements"`
	TotalArea    float64       `json:"total_area"`
}

// Validate checks the kind is known, the dimension count matches, and every
// dimension is positive. Triangles must satisfy the triangle inequality.
func (s Shape) Validate() error {
	n, ok := arity[s.Kind]
	if !ok {
		return domain.Invalid("shapes.validate", "unknown shape kind %q", s.Kind)
	}
	if len(s.Dims) != n {
		return domain.Invalid("shapes.validate", "%s takes %d dimension(s), got %d", s.Kind, n, len(s.Dims))
	}
	for _, d := range s.Dims {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return domain.Invalid("shapes.validate", "%s dimensions must be positive, got %v", s.Kind, s.Dims)
		}
	}
	if s.Kind == Triangle {
		a, b, c := s.Dims[0], s.Dims[1], s.Dims[2]
		if a+b <= c || a+c <= b || b+c <= a {
			return domain.Invalid("shapes.validate", "sides %v violate the triangle inequality", s.Dims)
		}
	}
	return nil
}

// Measure dispatches on the shape kind.
func Measure(s Shape) (area, perimeter float64, err error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	d := s.Dims
	switch s.Kind {
	case Circle:
		return math.Pi * d[0] * d[0], 2 * math.Pi * d[0], nil
	case Square:
		return d[0] * d[0], 4 * d[0], nil
	case Rectangle:
		return d[0] * d[1], 2 * (d[0] + d[1]), nil
	case Triangle:
		p := d[0] + d[1] + d[2]
		h := p / 2
		return math.Sqrt(h * (h - d[0]) * (h - d[1]) * (h - d[2])), p, nil
	}
	return 0, 0, domain.Invalid("shapes.measure", "unknown shape kind %q", s.Kind)
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() domain.ModuleName { return "shapes" }

func (m *Module) Summary() string { return "Area and perimeter of circles, squares, rectangles and triangles" }

func (m *Module) Run(_ context.Context, env *domain.Env) error {
	in, _, err := store.LoadOrInit(env.Results.Path(inputFile), DefaultInput)
	if err != nil {
		return err
	}

	res := Result{Stamp: env.NewStamp()}
	ui := console.New(env.Out, env.Locale)
	ui.Title("Shapes")
	for i, s := range in.Shapes {
		label := s.Name
		if label == "" {
			label = fmt.Sprintf("#%d %s", i+1, s.Kind)
		}

		meas := Measurement{Shape: s}
		area, perim, err := Measure(s)
		if err != nil {
			meas.Error = err.Error()
			ui.Warn(label + ": " + err.Error())
		} else {
			meas.Area = math.Round(area*1e4) / 1e4
			meas.Perimeter = math.Round(perim*1e4) / 1e4
			res.TotalArea += area
			ui.Field(label, fmt.Sprintf("area %s, perimeter %s", ui.Number(area, 2), ui.Number(perim, 2)))
		}
		res.Measurements = append(res.Measurements, meas)
	}
	res.TotalArea = math.Round(res.TotalArea*1e4) / 1e4
	ui.Field("Total area", ui.Number(res.TotalArea, 2))

	if err := env.Results.Overwrite(resultFile, res); err != nil {
		env.Log.Warn("could not save result", "err", err)
	}
	return nil
}

// Compile-time assertion that Module implements domain.Module.
var _ domain.Module = (*Module)(nil)
