package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/lapakbot/internal/catalog"
	"github.com/sandevgo/lapakbot/internal/config"
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/faq"
	"github.com/sandevgo/lapakbot/internal/knowledge"
	"github.com/sandevgo/lapakbot/internal/match"
	"github.com/sandevgo/lapakbot/internal/mood"
	"github.com/sandevgo/lapakbot/internal/providers/llm"
	"github.com/sandevgo/lapakbot/internal/service/cascade"
	"github.com/sandevgo/lapakbot/internal/service/command"
	"github.com/sandevgo/lapakbot/internal/service/guard"
	"github.com/sandevgo/lapakbot/internal/service/session"
	"github.com/sandevgo/lapakbot/internal/storage/sqlite"
	"github.com/sandevgo/lapakbot/internal/transport/cli"
	"github.com/sandevgo/lapakbot/internal/transport/telegram"
	"github.com/sandevgo/lapakbot/pkg/log"
	"github.com/sandevgo/lapakbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	knowledgeRepo := sqlite.NewKnowledgeRepo(db)
	catalogRepo := sqlite.NewCatalogRepo(db)
	curatedRepo := sqlite.NewCuratedRepo(db)

	// 3. Knowledge base
	store, err := knowledge.NewStore(ctx, knowledgeRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load knowledge base")
	}

	// 4. Resolvers
	renderer := catalog.NewRenderer(catalogRepo)
	catalogResolver := catalog.NewResolver(catalogRepo, renderer, match.NewDefaultValidator())

	var catalogNames []string
	if entries, err := catalogRepo.List(ctx); err == nil {
		for _, e := range entries {
			catalogNames = append(catalogNames, e.Name)
		}
	}

	// 5. Generative fallback (optional)
	var fallback core.FallbackResponder
	if appCfg.EnableFallback {
		llmCfg := config.NewLLMConfig(ctx)
		fallback = llm.NewResponder(llm.Config{
			BaseURL: llmCfg.BaseURL,
			APIKey:  llmCfg.APIKey,
			Model:   llmCfg.Model,
		}, catalogRepo)
	}

	// 6. Cascade
	orch := cascade.New(cascade.Config{
		Classifier: mood.NewClassifier(catalogNames),
		Store:      store,
		FAQs:       faq.NewResolver(curatedRepo, "faq"),
		Procedures: faq.NewResolver(curatedRepo, "procedures"),
		Promos:     faq.NewResolver(curatedRepo, "promos"),
		Catalog:    catalogResolver,
		Items:      catalogRepo,
		Validator:  guard.New(nil),
		Fallback:   fallback,
	})

	// 7. Admin commands
	sessions := session.NewStore(appCfg.SessionTimeout)
	commands := command.New(sessions, command.NewCommands(store, catalogRepo, renderer, sessions))

	// 8. Transports
	transports, err := initTransports(ctx, appCfg, orch, commands)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	orch *cascade.Orchestrator,
	commands *command.Router,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, orch, commands)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		console, err := cli.NewReadLine(orch, commands, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, console)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
