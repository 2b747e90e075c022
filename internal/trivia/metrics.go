package trivia

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	questionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchday",
		Subsystem: "trivia",
		Name:      "questions_generated_total",
		Help:      "Questions served, labeled by the archetype actually served.",
	}, []string{"archetype"})

	fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchday",
		Subsystem: "trivia",
		Name:      "generator_fallbacks_total",
		Help:      "Contract validation failures recovered by the match outcome generator, labeled by the failing archetype.",
	}, []string{"archetype"})
)
