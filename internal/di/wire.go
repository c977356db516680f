//go:build wireinject

package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"problemspec/internal/adapter/discord"
	"problemspec/internal/adapter/leetcode"
	"problemspec/internal/adapter/logging"
	"problemspec/internal/adapter/output"
	"problemspec/internal/adapter/source"
	"problemspec/internal/app"
	"problemspec/internal/config"
	"problemspec/internal/domain/ports"
	"problemspec/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideProblemSource,
		providePublisher,
		provideRenderConfig,
		usecase.NewRenderProblem,
		wire.Bind(new(app.Job), new(*usecase.RenderProblem)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}

// stdout carries rendered documents, so logs go to stderr.
func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stderr, cfg.LogLevel)
}

func provideProblemSource(cfg *config.Config, logger ports.Logger) (ports.ProblemSource, error) {
	switch {
	case cfg.ProblemFile != "":
		return source.NewFile(cfg.ProblemFile, logger), nil
	case cfg.LeetCodeSlug != "":
		return leetcode.New(cfg.LeetCodeSlug, cfg.RequestTimeout, logger), nil
	default:
		sample, err := source.NewSample()
		if err != nil {
			return nil, err
		}
		return sample, nil
	}
}

func providePublisher(cfg *config.Config, logger ports.Logger) ports.Publisher {
	var primary ports.Publisher
	if cfg.OutputDir != "" {
		primary = output.NewDir(cfg.OutputDir, logger)
	} else {
		primary = output.NewStream(os.Stdout, logger)
	}

	var webhook ports.Publisher
	if cfg.DiscordWebhookURL != "" {
		webhook = discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
	}

	return output.NewFanout(logger, primary, webhook)
}

func provideRenderConfig(cfg *config.Config) usecase.RenderProblemConfig {
	return usecase.RenderProblemConfig{
		Format:    cfg.OutputFormat,
		Indent:    cfg.IndentWidth,
		Languages: cfg.BoilerplateLanguages,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
