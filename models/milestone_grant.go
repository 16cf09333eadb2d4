package models

import (
	"time"
)

// MilestoneGrant records that a user unlocked a milestone. At most one grant
// exists per (user, milestone) — the unique index carries that invariant —
// and grants are never revoked.
type MilestoneGrant struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"uniqueIndex:idx_grants_user_milestone;not null" json:"user_id"`
	MilestoneID int       `gorm:"uniqueIndex:idx_grants_user_milestone;not null" json:"milestone_id"`
	GrantedAt   time.Time `gorm:"autoCreateTime" json:"granted_at"`
}
