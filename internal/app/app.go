package app

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/config"
	"github.com/NisaargPendal/local-clipboard-share/internal/queue"
	"github.com/NisaargPendal/local-clipboard-share/internal/sse"
)

type App struct {
	cfg      *config.Config
	hub      *sse.Hub
	consumer queue.Consumer
	server   *http.Server
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func NewApp(cfg *config.Config, hub *sse.Hub, consumer queue.Consumer, router *gin.Engine, logger *zap.Logger) *App {
	return &App{
		cfg:      cfg,
		hub:      hub,
		consumer: consumer,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	a.logger.Info("clipboard share listening",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.String("network_url", networkURL(a.cfg.HTTPAddr)),
	)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("graceful shutdown completed")
		return shutdownErr
	case <-ctx.Done():
		if shutdownErr != nil {
			return shutdownErr
		}
		return ctx.Err()
	}
}

// networkURL builds the URL other devices on the network should open when
// the server binds all interfaces.
func networkURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + localIP()
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = localIP()
	}
	return "http://" + net.JoinHostPort(host, port)
}

// localIP discovers the outbound interface address. The dial target is
// unroutable and no packets are sent.
func localIP() string {
	conn, err := net.Dial("udp4", "10.255.255.255:1")
	if err != nil {
		return "127.0.0.1"
	}
	defer func() { _ = conn.Close() }()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}
	return strings.TrimSpace(addr.IP.String())
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

func (a *App) Config() *config.Config {
	return a.cfg
}
