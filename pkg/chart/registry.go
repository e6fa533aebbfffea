package chart

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/askiada/survey-report/pkg/dataset"
	"github.com/askiada/survey-report/pkg/page"
)

// Kind names a page generator.
type Kind string

const (
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "hbar"
	KindGroupedBar    Kind = "grouped"
	KindTable         Kind = "table"
)

var (
	ErrGeneratorMustBeSet = errors.New("generator must be set")
	ErrUnknownKind        = errors.New("unknown generator kind")
	ErrKindRegistered     = errors.New("generator kind already registered")
)

// Generator maps a dataset and its parameters to a page.
type Generator func(ds *dataset.Dataset, params Params) (page.Page, error)

// Registry binds generator kinds to generators. It is filled at startup and read-only afterwards.
type Registry struct {
	generators map[Kind]Generator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[Kind]Generator)}
}

// DefaultRegistry returns a registry holding the bar, horizontal bar, grouped bar and table generators.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(KindBar, func(ds *dataset.Dataset, params Params) (page.Page, error) {
		return asPage(BarChart(ds, params))
	})
	reg.MustRegister(KindHorizontalBar, func(ds *dataset.Dataset, params Params) (page.Page, error) {
		return asPage(HorizontalBarChart(ds, params))
	})
	reg.MustRegister(KindGroupedBar, func(ds *dataset.Dataset, params Params) (page.Page, error) {
		return asPage(GroupedBarChart(ds, params))
	})
	reg.MustRegister(KindTable, func(ds *dataset.Dataset, params Params) (page.Page, error) {
		return asPage(TablePage(ds, params))
	})

	return reg
}

// asPage keeps a nil concrete page from turning into a non-nil interface.
func asPage[P page.Page](p P, err error) (page.Page, error) {
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Register binds kind to gen. Kinds can only be registered once.
func (r *Registry) Register(kind Kind, gen Generator) error {
	if gen == nil {
		return ErrGeneratorMustBeSet
	}
	if _, ok := r.generators[kind]; ok {
		return errors.Wrapf(ErrKindRegistered, "kind %q", kind)
	}
	r.generators[kind] = gen

	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(kind Kind, gen Generator) {
	if err := r.Register(kind, gen); err != nil {
		panic(err)
	}
}

// Get returns the generator bound to kind.
func (r *Registry) Get(kind Kind) (Generator, error) {
	gen, ok := r.generators[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "kind %q", kind)
	}

	return gen, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.generators))
	for kind := range r.generators {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}
