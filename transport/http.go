package transport

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gallerykit/portal/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HttpResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Payload interface{}      `json:"payload,omitempty"`
	Error   *HttpClientError `json:"error,omitempty"`
}

// NewHttp returns a configured gin engine instance
func NewHttp(cfg config.Configuration) *gin.Engine {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	ginEngine := gin.New()
	ginEngine.Use(gin.Recovery())
	ginEngine.RemoveExtraSlash = !cfg.Server.ExtraSlash
	return ginEngine
}

// RunHttp runs the http server with graceful shutdown
func RunHttp(cfg config.Configuration, log *logrus.Logger, g *gin.Engine) error {
	addr := resolveAddr(cfg.Server)
	srv := &http.Server{
		Addr:    addr,
		Handler: g,
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// Initializing the server in a goroutine so that it won't block the
	// graceful shutdown handling below
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Listen failed")
		}
	}()

	// Listen for the interrupt signal.
	<-ctx.Done()

	stop()
	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// The server has 5 seconds to finish the requests it is currently
	// handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("Server exiting")
	return nil
}

// Resolves address provided by http server configuration
func resolveAddr(cfg config.Server) string {
	port := cfg.Port
	if port == 80 {
		return cfg.Host
	}
	if cfg.Host == ":" {
		return fmt.Sprintf("%s%d", cfg.Host, port)
	}
	return fmt.Sprintf("%s:%d", cfg.Host, port)
}
