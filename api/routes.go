package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/analytics"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/insights"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/settings"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/status"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/user"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Routes builds the mux with /status and every v1 operation registered.
func (r *Rest) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Insights API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	user.NewHandler(r.Service.User).Register(api)
	settings.NewHandler(r.Service.Settings).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	analytics.NewHandler(r.Service.Analytics).Register(api)
	insights.NewHandler(r.Service.Insight).Register(api)

	return mux
}

// Serve blocks until ctx is cancelled and every in-flight request has finished,
// or until the listener fails.
func (r *Rest) Serve(ctx context.Context) {
	listener, err := net.Listen("tcp", ":"+r.Port)
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return
	}
	r.serve(ctx, listener)
}

func (r *Rest) serve(ctx context.Context, listener net.Listener) {
	server := http.Server{
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("addr", listener.Addr().String()).Info("HttpServer.Serve.listening")
	err := server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return
	}

	// Serve returns as soon as Shutdown starts; handlers may still be running.
	<-shutdownDone
	r.Logger.Info("HttpServer.Serve.shutting down")
}
