package graphs

import (
	"fmt"
	"io"
	"sort"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/proconlib/go-procon/internal/store"
	"github.com/proconlib/go-procon/pkg/algebra"
)

// DOTOption customizes DOT export.
type DOTOption func(*dotConfig)

type dotConfig struct {
	attributes   map[string]string
	vertexLabels map[int]string
}

// WithGraphAttribute sets a graph-level DOT attribute such as rankdir.
func WithGraphAttribute(key, value string) DOTOption {
	return func(cfg *dotConfig) {
		cfg.attributes[key] = value
	}
}

// WithDistances annotates every vertex with its distance from the
// source of p. Unreachable vertices are labelled "unreachable".
func WithDistances[W algebra.Number](p *ShortestPaths[W]) DOTOption {
	return func(cfg *dotConfig) {
		for v := 0; v < p.Len(); v++ {
			if d, ok := p.Dist(v); ok {
				cfg.vertexLabels[v] = fmt.Sprintf("%v", d)
			} else {
				cfg.vertexLabels[v] = "unreachable"
			}
		}
	}
}

const maxRGB = 240

// DOT writes the graph in Graphviz DOT format. Edges are coloured on a
// blue-to-red scale by weight, heaviest red. Parallel edges collapse
// into one.
func (g *Graph[W]) DOT(wrt io.Writer, options ...DOTOption) error {
	cfg := &dotConfig{
		attributes:   make(map[string]string),
		vertexLabels: make(map[int]string),
	}
	for _, option := range options {
		option(cfg)
	}

	opts := []func(*graph.Traits){}
	if g.directed {
		opts = append(opts, graph.Directed())
	}
	gph := graph.NewWithStore(graph.IntHash, store.NewDense[int](g.Len()), opts...)

	for v := 0; v < g.Len(); v++ {
		var vopts []func(*graph.VertexProperties)
		if label, ok := cfg.vertexLabels[v]; ok {
			vopts = append(vopts, graph.VertexAttribute("xlabel", label))
		}
		if err := gph.AddVertex(v, vopts...); err != nil {
			return errors.Wrapf(err, "unable to add vertex %d", v)
		}
	}

	heat := g.edgeColors()
	for _, e := range g.Edges() {
		err := gph.AddEdge(e.From, e.To,
			graph.EdgeWeight(int(e.Weight)),
			graph.EdgeAttribute("label", fmt.Sprintf("%v", e.Weight)),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", heat[e.Weight]),
		)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return errors.Wrapf(err, "unable to add edge from %d to %d", e.From, e.To)
		}
	}

	desc, err := generateDOT(gph, cfg.attributes)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// edgeColors maps every distinct edge weight to a heat colour.
func (g *Graph[W]) edgeColors() map[W]string {
	heat := make(map[W]string)
	if len(g.edges) == 0 {
		return heat
	}

	minWeight, maxWeight := g.edges[0].Weight, g.edges[0].Weight
	for _, e := range g.edges {
		minWeight = min(minWeight, e.Weight)
		maxWeight = max(maxWeight, e.Weight)
	}

	for _, e := range g.edges {
		fraction := 1.0
		if maxWeight > minWeight {
			fraction = float64(e.Weight-minWeight) / float64(maxWeight-minWeight)
		}

		red := maxRGB * fraction
		blue := -maxRGB*fraction + maxRGB

		heatColor, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			continue
		}

		heat[e.Weight] = heatColor.ToHEX().String()
	}

	return heat
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .HasTarget}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	HasTarget        bool
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func generateDOT(gra graph.Graph[int, int], attributes map[string]string) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   attributes,
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]int, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Ints(vertices)

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		adjacencies := make([]int, 0, len(adjacencyMap[vertex]))
		for adjacency := range adjacencyMap[vertex] {
			adjacencies = append(adjacencies, adjacency)
		}
		sort.Ints(adjacencies)

		for _, adjacency := range adjacencies {
			edge := adjacencyMap[vertex][adjacency]
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				HasTarget:      true,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
