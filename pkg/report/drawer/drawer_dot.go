package drawer

import (
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/survey-report/internal/store"
	"github.com/askiada/survey-report/pkg/report/measure"
)

const (
	failedColor = "red"
	xlabelKey   = "xlabel"
)

// DOTDrawer is a drawer that writes the run graph as a DOT file.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	store       *store.OrderedStore[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	st := store.NewOrderedStore[string, string]()

	return &DOTDrawer{
		dotFileName: dotFileName,
		store:       st,
		graph:       graph.NewWithStore(graph.StringHash, graph.Store[string, string](st), graph.Directed(), graph.PreventCycles()),
	}
}

// AddPage adds a page to the run graph.
func (d *DOTDrawer) AddPage(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between two consecutive pages.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// MarkFailed colours a skipped page and dashes the link leading to it.
func (d *DOTDrawer) MarkFailed(parentName, name, reason string) error {
	err := d.store.UpdateVertex(name,
		graph.VertexAttribute("color", failedColor),
		graph.VertexAttribute("fontcolor", failedColor),
		graph.VertexAttribute(xlabelKey, reason),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to update vertex %s", name)
	}

	err = d.graph.UpdateEdge(parentName, name,
		graph.EdgeAttribute("style", "dashed"),
		graph.EdgeAttribute("color", failedColor),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to update edge from %s to %s", parentName, name)
	}

	return nil
}

// Draw writes the run graph to the DOT file.
func (d *DOTDrawer) Draw() (err error) {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "unable to close file %s", d.dotFileName)
		}
	}()

	err = d.WriteTo(file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

// WriteTo renders the run graph as DOT to wrt.
func (d *DOTDrawer) WriteTo(wrt io.Writer) error {
	desc, err := d.generateDOT()
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// SetTotalTime sets the total time of the page.
func (d *DOTDrawer) SetTotalTime(name string, totalTime time.Duration) error {
	err := d.store.UpdateVertex(name, graph.VertexAttribute(xlabelKey, "total: "+totalTime.String()))
	if err != nil {
		return errors.Wrapf(err, "unable to get %s vertex properties", name)
	}

	return nil
}

const maxRGB = 240

// AddMeasure labels every page with its durations and colours the link leading to it on a
// blue to red gradient, red being the slowest page.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	palette := make(map[time.Duration]string)
	sorted := []time.Duration{}

	for _, page := range msr.AllMetrics() {
		if page.Failed() || page.GenerationDuration()+page.EmissionDuration() == 0 {
			continue
		}
		elapsed := page.GetTotalDuration()
		if _, ok := palette[elapsed]; ok {
			continue
		}
		palette[elapsed] = ""
		sorted = append(sorted, elapsed)
	}

	if len(sorted) > 0 {
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i] > sorted[j]
		})

		maxValue := sorted[0]
		minValue := sorted[len(sorted)-1]
		for curr := range palette {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := maxRGB * fraction
			blue := maxRGB - maxRGB*fraction

			clr, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			palette[curr] = clr.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, palette)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, palette map[time.Duration]string) error {
	edges, err := d.store.ListEdges()
	if err != nil {
		return errors.Wrap(err, "unable to list edges")
	}

	for _, edge := range edges {
		page := msr.GetMetric(edge.Target)
		if page == nil || page.Failed() || page.GenerationDuration()+page.EmissionDuration() == 0 {
			continue
		}

		err := d.store.UpdateVertex(edge.Target, graph.VertexAttribute(xlabelKey,
			fmt.Sprintf("generate: %s, emit: %s", page.GenerationDuration(), page.EmissionDuration())))
		if err != nil {
			return errors.Wrap(err, "unable to update vertex properties")
		}

		err = d.graph.UpdateEdge(edge.Source, edge.Target,
			graph.EdgeAttribute("label", page.GetTotalDuration().String()),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", palette[page.GetTotalDuration()]),
		)
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
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
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

// GraphAttribute sets a graph level DOT attribute.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT lists every page followed by its outgoing links, in the order the pages were added.
func (d *DOTDrawer) generateDOT(options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "digraph",
		Attributes:   map[string]string{"rankdir": "LR"},
		EdgeOperator: "->",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	vertices, err := d.store.ListVertices()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list vertices")
	}
	edges, err := d.store.ListEdges()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list edges")
	}
	outgoing := make(map[string][]graph.Edge[string], len(vertices))
	for _, edge := range edges {
		outgoing[edge.Source] = append(outgoing[edge.Source], edge)
	}

	for _, vertex := range vertices {
		_, sourceProperties, err := d.graph.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes[xlabelKey]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`,
				html.EscapeString(vertex), html.EscapeString(xlabel))

			delete(sourceAttributes, xlabelKey)
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		for _, edge := range outgoing[vertex] {
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         edge.Target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
