package models

import (
	"time"
)

// EventKind identifies the user action an event records.
type EventKind string

const (
	KindTunePlay         EventKind = "TunePlay"
	KindPracticeComplete EventKind = "PracticeComplete"
	KindSharePost        EventKind = "SharePost"
	KindLightSend        EventKind = "LightSend"
)

// Valid reports whether k is one of the four known kinds.
func (k EventKind) Valid() bool {
	switch k {
	case KindTunePlay, KindPracticeComplete, KindSharePost, KindLightSend:
		return true
	}
	return false
}

// Event is one immutable record of a user action. Rows are append-only:
// never updated, never deleted. PointsAwarded is frozen at write time and is
// not recomputed when the rule set changes, so the log can always be
// re-aggregated into the daily counters.
type Event struct {
	ID            string         `gorm:"primaryKey;type:uuid" json:"id"`
	UserID        string         `gorm:"index:idx_events_user;not null" json:"user_id"`
	Kind          EventKind      `gorm:"type:varchar(32);not null" json:"kind"`
	Metadata      map[string]any `gorm:"serializer:json" json:"metadata"`
	OccurredAt    time.Time      `gorm:"not null;index" json:"occurred_at"`
	PointsAwarded int            `gorm:"not null" json:"points_awarded"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
