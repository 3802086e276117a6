//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/NisaargPendal/local-clipboard-share/internal/app"
	"github.com/NisaargPendal/local-clipboard-share/internal/config"
	"github.com/NisaargPendal/local-clipboard-share/internal/http"
	"github.com/NisaargPendal/local-clipboard-share/internal/http/controller"
	"github.com/NisaargPendal/local-clipboard-share/internal/logging"
	"github.com/NisaargPendal/local-clipboard-share/internal/queue/rabbitmq"
	"github.com/NisaargPendal/local-clipboard-share/internal/service/clipboard"
	"github.com/NisaargPendal/local-clipboard-share/internal/sse"
	"github.com/NisaargPendal/local-clipboard-share/internal/store"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		store.NewStore,
		sse.NewHub,
		clipboard.NewService,
		controller.NewHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
	)
	return &app.App{}, nil
}
