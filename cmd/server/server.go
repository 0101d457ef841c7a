package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jan-server/services/support-api/internal/config"
	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/domain/knowledge"
	"jan-server/services/support-api/internal/domain/llm"
	"jan-server/services/support-api/internal/domain/reply"
	"jan-server/services/support-api/internal/infrastructure/database"
	"jan-server/services/support-api/internal/infrastructure/llmprovider"
	"jan-server/services/support-api/internal/infrastructure/logger"
	"jan-server/services/support-api/internal/infrastructure/metrics"
	"jan-server/services/support-api/internal/infrastructure/observability"
	conversationrepo "jan-server/services/support-api/internal/infrastructure/repository/conversation"
	knowledgerepo "jan-server/services/support-api/internal/infrastructure/repository/knowledge"
	"jan-server/services/support-api/internal/interfaces/httpserver"
)

// @title Support API
// @version 1.0
// @description Customer support chat: persisted conversations with LLM generated replies grounded by an FAQ knowledge base
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := newGormDB(ctx, newDatabaseConfig(cfg), log)
	if err != nil {
		log.Fatal().Err(err).Msg("prepare database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	provider, err := llmprovider.NewProvider(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize llm provider")
	}

	conversationRepository := conversationrepo.NewGormRepository(db)
	knowledgeService := knowledge.NewService(knowledgerepo.NewGormRepository(db), log)
	generator := newReplyGenerator(cfg, conversationRepository, knowledgeService, provider, log)
	conversationService := conversation.NewService(conversationRepository, generator, newConversationConfig(cfg), log)

	httpServer := httpserver.New(cfg, log, conversationService, knowledgeService, newReadinessCheck(db))
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
		return
	}

	log.Info().Msg("application exited cleanly")
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

// newGormDB connects, migrates and seeds the knowledge base.
func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Prepare(ctx, db, log); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

func newReplyGenerator(cfg *config.Config, history reply.HistorySource, kb reply.KnowledgeSource, provider llm.Provider, log zerolog.Logger) *reply.Generator {
	return reply.NewGenerator(history, kb, provider, reply.Options{
		HistoryWindow:  cfg.ReplyHistoryWindow,
		MaxPromptChars: cfg.ReplyMaxPromptChars,
		Temperature:    cfg.LLMTemperature,
		SupportEmail:   cfg.SupportEmail,
	}, log).WithObserver(func(name string, kind llm.ErrorKind, elapsed time.Duration) {
		metrics.RecordReplyGeneration(name, string(kind), elapsed.Seconds())
	})
}

func newConversationConfig(cfg *config.Config) conversation.Config {
	return conversation.Config{MaxMessageChars: cfg.MessageMaxChars}
}

func newReadinessCheck(db *gorm.DB) httpserver.ReadinessCheck {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
