package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/wp-hub/internal/modules/logs"
	"github.com/reusedev/wp-hub/internal/service/http/handler"
	"github.com/reusedev/wp-hub/internal/service/http/middleware"
)

const shutdownTimeout = 10 * time.Second

// Serve blocks until ctx is done or the listener fails.
func Serve(ctx context.Context, port string, h *handler.Handler) error {
	srv := &http.Server{
		Addr:              port,
		Handler:           NewEngine(h),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Info().Str("addr", port).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logs.Logger.Info().Msg("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func NewEngine(h *handler.Handler) *gin.Engine {
	e := gin.New()
	initRouter(e, h)
	return e
}

func initRouter(e *gin.Engine, h *handler.Handler) {
	e.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())
	e.GET("/healthz", handler.Health)
	e.POST("/posttowordpress", h.PostToWordPress)
	e.POST("/integrate-images", h.IntegrateImages)
}
