package main

import (
	"gemini-portal/config"
	"gemini-portal/initialize"
	"gemini-portal/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	if cfg.SecretGenerated {
		log.Warn().Msg("SECRET_KEY not set; generated a random key, sessions will not survive a restart")
	}

	app, err := initialize.Build(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("listening")
	if err := server.StartHTTPServer(cfg.Host, cfg.Port, app.Router); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
