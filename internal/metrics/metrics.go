// Package metrics Счетчики панели для /metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SpinsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_spins_recorded_total",
		Help: "Total number of spins recorded by the operator.",
	})
	SpinsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_spins_deleted_total",
		Help: "Total number of spins removed from the log.",
	})
	HistoryCleared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_history_cleared_total",
		Help: "Total number of full history clears.",
	})
	CroupierSwitches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roulette_croupier_switches_total",
		Help: "Total number of active croupier changes, including new croupiers.",
	})
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roulette_analysis_duration_seconds",
		Help:    "Time spent recomputing the analysis for the active croupier.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	StreamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roulette_stream_clients",
		Help: "Number of connected analysis stream clients.",
	})
)
