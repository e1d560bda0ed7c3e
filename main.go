package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	playlistservice "github.com/moodmix/playlist-api/internal/app/services/playlist"
	server "github.com/moodmix/playlist-api/internal/infra/http"
	diaghandler "github.com/moodmix/playlist-api/internal/infra/http/handlers/diag"
	playlisthandler "github.com/moodmix/playlist-api/internal/infra/http/handlers/playlist"
	"github.com/moodmix/playlist-api/internal/infra/repository/spotify"
)

func main() {
	err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	config := GetEnv()
	setupLogger(config)

	ctx := context.Background()
	if config.OTLPEndpoint != "" {
		spanExporter, err := newSpanExporter(ctx, config.OTLPEndpoint)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to create span exporter")
		}

		tracerProvider, err := newTracerProvider(spanExporter)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to create tracer provider")
		}
		otel.SetTracerProvider(tracerProvider)
		defer func() {
			if err := tracerProvider.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("Failed to shut down tracer provider")
			}
		}()
	}
	tracer := otel.Tracer("mood-playlist-api")

	tokens := spotify.NewTokenSource(
		config.SpotifyClientID,
		config.SpotifyClientSecret,
		spotify.AccountsBaseURL,
	)
	catalog := spotify.NewClient(tracer, spotify.APIBaseURL)

	playlistService := playlistservice.New(tracer, tokens, catalog)

	playlistHandler := playlisthandler.New(tracer, playlistService)
	diagHandler := diaghandler.New(
		tracer,
		config.AppEnv,
		config.SpotifyClientID,
		config.SpotifyClientSecret,
		tokens,
	)

	srv := server.New(server.NewConfig(config.Port), playlistHandler, diagHandler)

	logrus.WithField("port", config.Port).Info("Starting HTTP server")
	logrus.Fatal(srv.ListenAndServe())
}

func setupLogger(config *Env) {
	if config.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("Invalid log level, falling back to info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
