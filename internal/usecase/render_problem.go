package usecase

import (
	"context"
	"fmt"
	"time"

	"problemspec/internal/codegen"
	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
	"problemspec/internal/serializer"
)

// RenderProblem loads a problem, renders it, publishes the text and
// optionally publishes solution boilerplate for a set of languages.
type RenderProblem struct {
	source    ports.ProblemSource
	publisher ports.Publisher
	logger    ports.Logger
	options   serializer.Options
	languages []codegen.Language
}

// RenderProblemConfig controls output format and boilerplate targets.
type RenderProblemConfig struct {
	Format    serializer.Format
	Indent    int
	Languages []codegen.Language
}

// NewRenderProblem constructs a RenderProblem use case.
func NewRenderProblem(
	source ports.ProblemSource,
	publisher ports.Publisher,
	logger ports.Logger,
	cfg RenderProblemConfig,
) *RenderProblem {
	format := cfg.Format
	if format == "" {
		format = serializer.FormatJSON
	}
	return &RenderProblem{
		source:    source,
		publisher: publisher,
		logger:    logger,
		options:   serializer.Options{Format: format, Indent: cfg.Indent},
		languages: cfg.Languages,
	}
}

// Run executes one load, render and publish cycle.
func (r *RenderProblem) Run(ctx context.Context) error {
	start := time.Now()

	def, err := r.source.Load(ctx)
	if err != nil {
		r.logger.Error(ctx, "failed to load problem", "error", err)
		return err
	}

	text, err := serializer.Encode(def.Problem, r.options)
	if err != nil {
		r.logger.Error(ctx, "failed to render problem", "error", err)
		return err
	}

	doc := model.Document{
		Name:     def.Problem.FunctionName() + "." + r.options.Format.Extension(),
		Language: string(r.options.Format),
		Content:  text,
	}
	if err := r.publisher.Publish(ctx, doc); err != nil {
		r.logger.Error(ctx, "failed to publish problem", "document", doc.Name, "error", err)
		return err
	}

	fn, err := serializer.GetField(def.Problem, serializer.FieldFunctionName)
	if err != nil {
		return err
	}
	r.logger.Info(ctx, "problem rendered",
		"source", def.Source,
		"function", fn,
		"parameters", def.Problem.ParamCount(),
		"difficulty", def.Problem.Difficulty())

	if err := r.publishBoilerplate(ctx, def); err != nil {
		return err
	}

	r.logger.Info(ctx, "render completed", "duration", time.Since(start))
	return nil
}

// publishBoilerplate keeps going after a failing language and reports the first failure.
func (r *RenderProblem) publishBoilerplate(ctx context.Context, def *model.Definition) error {
	var firstErr error
	for _, lang := range r.languages {
		doc, err := codegen.Generate(def, lang)
		if err != nil {
			r.logger.Error(ctx, "failed to generate boilerplate", "language", lang, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("boilerplate %s: %w", lang, err)
			}
			continue
		}
		if err := r.publisher.Publish(ctx, doc); err != nil {
			r.logger.Error(ctx, "failed to publish boilerplate", "document", doc.Name, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("publish %s: %w", doc.Name, err)
			}
			continue
		}
		r.logger.Debug(ctx, "boilerplate published", "document", doc.Name)
	}
	return firstErr
}
