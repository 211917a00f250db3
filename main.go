package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/config"
	"github.com/synthdata-io/synth-engine/pkg/fake"
	"github.com/synthdata-io/synth-engine/pkg/generator"
	"github.com/synthdata-io/synth-engine/pkg/handlers"
	"github.com/synthdata-io/synth-engine/pkg/llm"
	"github.com/synthdata-io/synth-engine/pkg/llmgen"
	"github.com/synthdata-io/synth-engine/pkg/logging"
	"github.com/synthdata-io/synth-engine/pkg/middleware"
	"github.com/synthdata-io/synth-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	textGen, err := llm.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize text-generation client", zap.Error(err))
	}

	provider := fake.NewProvider(cfg.Generation.Seed)
	gen, err := generator.New(provider, cfg.Generation.Seed, logger)
	if err != nil {
		logger.Fatal("Failed to initialize generator", zap.Error(err))
	}

	adapter := llmgen.New(textGen, cfg.Generation.MaxAttempts, cfg.Generation.Temperature, gen.ScratchRecord, logger)
	service := services.NewSynthesisService(gen, adapter, logger)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	store := handlers.NewResultStore()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(router)
	handlers.NewSynthesisHandler(service, store, logger).RegisterRoutes(router)
	handlers.NewResultsHandler(store, logger).RegisterRoutes(router)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting synth-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env),
		zap.String("llm_provider", cfg.LLM.Provider))

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
