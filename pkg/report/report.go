package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/survey-report/internal/config"
	"github.com/askiada/survey-report/pkg/chart"
	"github.com/askiada/survey-report/pkg/dataset"
	"github.com/askiada/survey-report/pkg/emit"
	"github.com/askiada/survey-report/pkg/page"
	"github.com/askiada/survey-report/pkg/report/model"
)

// Report generates the survey report described by a config.
type Report struct {
	cfg      *config.Config
	registry *chart.Registry
	logger   *zap.Logger
	progress io.Writer
	opts     []model.RunOption
}

// Result describes a finished run.
type Result struct {
	// Pages lists the emitted pages in document order.
	Pages []emit.Entry
	// Failures lists the catalog entries left out of the report, in catalog order.
	Failures   []Failure
	PDF        string
	FiguresDir string
	Duration   time.Duration
}

// New creates a report and initialises its run options. A report runs once.
func New(cfg *config.Config, opts ...Option) (*Report, error) {
	if cfg == nil {
		return nil, ErrConfigMustBeSet
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &Report{
		cfg:      cfg,
		registry: chart.DefaultRegistry(),
		logger:   zap.NewNop(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, opt := range r.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply run option")
		}
	}

	return r, nil
}

// fixedPage is a page that is not backed by a dataset.
type fixedPage struct {
	label string
	build func() page.Page
}

// Run generates every page and writes the report. Catalog entries that fail are logged and
// listed in the result; the returned error is only set when the report could not be written.
func (r *Report) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	emitter, err := emit.New(r.cfg.Layout)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create emitter")
	}

	res := &Result{PDF: r.cfg.Layout.PDF, FiguresDir: r.cfg.Layout.FiguresDir}
	parent := model.StartPage

	fixed := []fixedPage{
		{label: "Cover page", build: func() page.Page { return page.Cover() }},
		{label: "Executive summary", build: func() page.Page { return page.ExecutiveSummary() }},
	}
	for _, fp := range fixed {
		genStart := time.Now()
		p := fp.build()
		info := &model.PageInfo{Kind: model.TextPageKind, Name: p.Name(), Label: fp.label}

		err = r.preparePage(parent, info)
		if err != nil {
			return nil, err
		}
		entry, err := r.emitPage(emitter, info, p, fp.label, time.Since(genStart), parent)
		if err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, entry)
		parent = info
	}

	for i, spec := range r.cfg.Pages {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "report interrupted")
		}

		if spec.Format != "" && !spec.Format.Known() {
			r.logger.Warn("unknown value format, values are printed unformatted",
				zap.String("name", spec.Name),
				zap.String("format", string(spec.Format)),
			)
		}

		info := &model.PageInfo{Kind: model.DataPageKind, Name: spec.Name, Label: spec.Display()}
		err = r.preparePage(parent, info)
		if err != nil {
			return nil, err
		}

		genStart := time.Now()
		p, err := r.generate(spec)
		if err != nil {
			r.logger.Error("unable to create page",
				zap.String("page", spec.Display()),
				zap.String("name", spec.Name),
				zap.String("source", r.cfg.Path(spec)),
				zap.Error(err),
			)
			res.Failures = append(res.Failures, Failure{Position: i + 1, Name: spec.Name, Label: spec.Display(), Err: err})

			err = r.onPageFailure(parent, info, err)
			if err != nil {
				return nil, err
			}

			continue
		}

		entry, err := r.emitPage(emitter, info, p, p.Name(), time.Since(genStart), parent)
		if err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, entry)
		parent = info
	}

	err = emitter.Close()
	if err != nil {
		return nil, errors.Wrap(err, "unable to write report")
	}

	res.Duration = time.Since(startTime)
	for _, opt := range r.opts {
		err := opt.Finish(parent, res.Duration)
		if err != nil {
			return nil, errors.Wrap(err, "unable to finish run option")
		}
	}

	r.logger.Info("report generated",
		zap.Int("pages", len(res.Pages)),
		zap.Int("skipped", len(res.Failures)),
		zap.String("pdf", res.PDF),
		zap.Duration("duration", res.Duration),
	)

	return res, nil
}

// generate loads the dataset of spec and renders it. Generator panics are returned as errors.
func (r *Report) generate(spec config.PageSpec) (p page.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p = nil
			err = errors.Wrapf(ErrGeneratorPanic, "%v", rec)
		}
	}()

	gen, err := r.registry.Get(spec.Kind)
	if err != nil {
		return nil, errors.Wrap(err, "unable to find generator")
	}

	ds, err := dataset.Load(r.cfg.Path(spec), spec.Required)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load dataset")
	}

	p, err = gen(ds, spec.Params)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate page")
	}
	if p == nil {
		return nil, ErrNilPage
	}

	return p, nil
}

// emitPage writes p to the report. Any failure here is fatal.
func (r *Report) emitPage(
	emitter *emit.Emitter, info *model.PageInfo, p page.Page, progressName string,
	generationDuration time.Duration, parent *model.PageInfo,
) (entry emit.Entry, err error) {
	info.Index = emitter.Count() + 1
	fmt.Fprintf(r.progress, "Creating page %d: %s\n", info.Index, progressName)

	emitStart := time.Now()
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				err = errors.Wrapf(ErrEmitPanic, "page %s: %v", p.Name(), rec)
			}
		}()
		entry, err = emitter.Emit(p)
	}()
	if err != nil {
		return emit.Entry{}, errors.Wrapf(err, "unable to emit page %s", p.Name())
	}
	emissionDuration := time.Since(emitStart)

	r.logger.Debug("page emitted",
		zap.Int("index", entry.Index),
		zap.String("page", p.Name()),
		zap.String("image", entry.ImagePath),
		zap.Duration("generation", generationDuration),
		zap.Duration("emission", emissionDuration),
	)

	for _, opt := range r.opts {
		err := opt.OnPageOutput(parent, info, generationDuration, emissionDuration)
		if err != nil {
			return emit.Entry{}, errors.Wrap(err, "unable to apply run option on page output")
		}
	}

	return entry, nil
}

func (r *Report) preparePage(parent, info *model.PageInfo) error {
	for _, opt := range r.opts {
		err := opt.PreparePage(parent, info)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare page %s", info.Name)
		}
	}

	return nil
}

func (r *Report) onPageFailure(parent, info *model.PageInfo, pageErr error) error {
	for _, opt := range r.opts {
		err := opt.OnPageFailure(parent, info, pageErr)
		if err != nil {
			return errors.Wrapf(err, "unable to apply run option on page %s failure", info.Name)
		}
	}

	return nil
}
