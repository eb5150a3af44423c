package main

import (
	"flag"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/api"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/config"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/database"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/logging"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/pipeline"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/storage"
)

func main() {
	var configPath = flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Init("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LogLevel)

	localStorage, err := storage.NewLocalStorage(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	db, err := database.NewDB(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	videoRepo := database.NewVideoRepository(db)

	var runner pipeline.Runner
	if len(cfg.PipelineCommand) > 0 {
		runner = &pipeline.CommandRunner{Command: cfg.PipelineCommand}
	} else {
		runner = pipeline.NopRunner{}
	}

	app := &api.App{
		Storage:       localStorage,
		VideoRepo:     videoRepo,
		Pipeline:      runner,
		MaxUploadSize: cfg.MaxUploadSize,
		StaticDir:     cfg.StaticDir,
	}

	router := api.NewRouter(app)

	log.Info().
		Str("port", cfg.Port).
		Str("input_dir", cfg.InputDir).
		Str("output_dir", cfg.OutputDir).
		Str("db_path", cfg.DBPath).
		Int64("max_upload_size", cfg.MaxUploadSize).
		Msg("Server starting")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
