// Package metrics exposes assessment counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics records session activity. The session observer methods are
// no-ops on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	sessionsStarted   *prometheus.CounterVec
	sessionsCompleted *prometheus.CounterVec
	answersRecorded   *prometheus.CounterVec
	overallScore      *prometheus.HistogramVec
}

// New creates Metrics on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assessiz_sessions_started_total",
				Help: "Total number of assessment sessions started",
			},
			[]string{"assessment"},
		),
		sessionsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assessiz_sessions_completed_total",
				Help: "Total number of assessment sessions completed",
			},
			[]string{"assessment", "reason"},
		),
		answersRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assessiz_answers_recorded_total",
				Help: "Total number of answers recorded",
			},
			[]string{"assessment"},
		),
		overallScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "assessiz_overall_score",
				Help:    "Overall percentage score of completed sessions",
				Buckets: []float64{20, 40, 60, 70, 80, 90, 100},
			},
			[]string{"assessment"},
		),
	}
	m.registry.MustRegister(m.sessionsStarted, m.sessionsCompleted, m.answersRecorded, m.overallScore)
	return m
}

func (m *Metrics) SessionStarted(assessmentID string) {
	if m == nil {
		return
	}
	m.sessionsStarted.WithLabelValues(assessmentID).Inc()
}

func (m *Metrics) AnswerRecorded(assessmentID string) {
	if m == nil {
		return
	}
	m.answersRecorded.WithLabelValues(assessmentID).Inc()
}

func (m *Metrics) SessionCompleted(assessmentID, reason string, score int) {
	if m == nil {
		return
	}
	m.sessionsCompleted.WithLabelValues(assessmentID, reason).Inc()
	m.overallScore.WithLabelValues(assessmentID).Observe(float64(score))
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics listener started", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("metrics listener failed", zap.Error(err))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
