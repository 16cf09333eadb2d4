package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsSubmitted counts event submissions by kind and outcome
	// ("recorded" or "denied").
	EventsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engagement_events_submitted_total",
		Help: "Event submissions by kind and outcome.",
	}, []string{"kind", "outcome"})

	// MilestonesGranted counts one-time milestone unlocks.
	MilestonesGranted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "engagement_milestones_granted_total",
		Help: "Milestone grants issued.",
	})
)
