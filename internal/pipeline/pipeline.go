// Package pipeline wires the classifier and the hint factory into the
// request-level operations the transport calls.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/abhisek/blockhint/internal/blocktree"
	"github.com/abhisek/blockhint/internal/diagnosis"
	"github.com/abhisek/blockhint/internal/hints"
	"github.com/abhisek/blockhint/internal/telemetry"
)

// Pipeline classifies a submission and composes its hint. It holds no
// per-request state and is safe for concurrent use.
type Pipeline struct {
	classifier *diagnosis.Classifier
	factory    *hints.Factory
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for internal consistency failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithTracer sets the tracer; the default comes from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// New returns a pipeline over the default rule tables, detectors and
// generators.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: diagnosis.NewClassifier(),
		factory:    hints.DefaultFactory(),
		logger:     slog.Default(),
		tracer:     otel.Tracer(telemetry.TracerName),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Result is a diagnosed submission.
type Result struct {
	Diagnosis diagnosis.Diagnosis
	Document  *hints.HintDocument
}

// parse reads the block tree. An empty source is allowed for failed runs,
// whose category comes from the error text alone.
func parse(source string, status diagnosis.Status) (*blocktree.Tree, error) {
	if source == "" && status == diagnosis.StatusFailure {
		return nil, nil
	}
	return blocktree.Parse(source)
}

// Classify maps an outcome and its block program to one category.
func (p *Pipeline) Classify(ctx context.Context, outcome diagnosis.Outcome, source string) (diagnosis.Diagnosis, error) {
	_, span := p.tracer.Start(ctx, "pipeline.Classify", trace.WithAttributes(
		attribute.String("blockhint.language", string(outcome.Language)),
		attribute.String("blockhint.status", string(outcome.Status)),
	))
	defer span.End()

	tree, err := parse(source, outcome.Status)
	if err != nil {
		return diagnosis.Diagnosis{}, p.fail(span, err)
	}
	d, err := p.classifier.Classify(outcome, tree)
	if err != nil {
		return diagnosis.Diagnosis{}, p.fail(span, err)
	}
	span.SetAttributes(
		attribute.String("blockhint.category", string(d.Category)),
		attribute.String("blockhint.matched_by", d.MatchedBy),
	)
	return d, nil
}

// ComposeHint renders the hint for category. On a no-hint failure the
// returned document is the 404 fallback and err says why.
func (p *Pipeline) ComposeHint(ctx context.Context, category diagnosis.ErrorCategory, source, errorText string, lang diagnosis.Language) (*hints.HintDocument, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.ComposeHint", trace.WithAttributes(
		attribute.String("blockhint.category", string(category)),
	))
	defer span.End()

	var tree *blocktree.Tree
	if source != "" {
		t, err := blocktree.Parse(source)
		if err != nil {
			return nil, p.fail(span, err)
		}
		tree = t
	}
	return p.compose(ctx, span, category, tree, errorText, lang)
}

func (p *Pipeline) compose(ctx context.Context, span trace.Span, category diagnosis.ErrorCategory, tree *blocktree.Tree, errorText string, lang diagnosis.Language) (*hints.HintDocument, error) {
	g, err := p.factory.Create(category, tree, errorText, lang)
	if err != nil {
		return hints.NotFound(), p.fail(span, err)
	}
	doc, err := g.Generate()
	if err != nil {
		var factsErr *hints.ErrFactsNotFound
		if errors.As(err, &factsErr) {
			p.logger.ErrorContext(ctx, "classifier and hint generator disagree",
				"category", string(category), "error", err)
		}
		if NoHintAvailable(err) {
			return hints.NotFound(), p.fail(span, err)
		}
		return nil, p.fail(span, err)
	}
	return doc, nil
}

// Diagnose classifies the submission and composes its hint. The source is
// parsed once, before classification, so malformed input is reported
// distinctly from "no rule matched".
func (p *Pipeline) Diagnose(ctx context.Context, outcome diagnosis.Outcome, source string) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.Diagnose", trace.WithAttributes(
		attribute.String("blockhint.language", string(outcome.Language)),
		attribute.String("blockhint.status", string(outcome.Status)),
	))
	defer span.End()

	tree, err := parse(source, outcome.Status)
	if err != nil {
		return nil, p.fail(span, err)
	}

	d, err := p.classifier.Classify(outcome, tree)
	if err != nil {
		if NoHintAvailable(err) {
			return &Result{Document: hints.NotFound()}, p.fail(span, err)
		}
		return nil, p.fail(span, err)
	}
	span.SetAttributes(
		attribute.String("blockhint.category", string(d.Category)),
		attribute.String("blockhint.matched_by", d.MatchedBy),
	)

	doc, err := p.compose(ctx, span, d.Category, tree, outcome.ErrorText, outcome.Language)
	return &Result{Diagnosis: d, Document: doc}, err
}

// fail records err on span. Only failures outside the no-hint family mark
// the span as an error.
func (p *Pipeline) fail(span trace.Span, err error) error {
	span.RecordError(err)
	if !NoHintAvailable(err) {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Categories lists the taxonomy served by this pipeline.
func (p *Pipeline) Categories() []*diagnosis.CategoryInfo {
	var out []*diagnosis.CategoryInfo
	for _, id := range p.factory.Categories() {
		if c := diagnosis.GetCategory(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}
