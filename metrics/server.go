package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/achilleasa/octocam/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.New("metrics")

// Handler returns the handler that exposes the registered collectors.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// ListenAndServe exposes the metrics on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: Handler()}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Warningf("shutting down metrics server on %s failed: %v", addr, err)
		}
	}()

	logger.Infof("serving metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Infof("stopped metrics server on %s", addr)
	return nil
}
