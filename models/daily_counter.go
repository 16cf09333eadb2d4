package models

import (
	"time"
)

// SpaceSet is the set of practice spaces a user completed on a given day,
// stored as normalized space keys. It backs the one-completion-per-space-
// per-day cap.
type SpaceSet []string

// Contains reports whether key is already in the set.
func (s SpaceSet) Contains(key string) bool {
	for _, v := range s {
		if v == key {
			return true
		}
	}
	return false
}

// Add returns the set with key included, without duplicates.
func (s SpaceSet) Add(key string) SpaceSet {
	if s.Contains(key) {
		return s
	}
	return append(s, key)
}

// DailyCounter is the per-user, per-UTC-day rollup. A row is created on the
// first event of a day and merged on every later event of that day; rows are
// never deleted. PointsEarned tracks the sum of PointsAwarded in the event
// log for the same user and date.
type DailyCounter struct {
	ID             string   `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string   `gorm:"uniqueIndex:idx_counters_user_date;not null" json:"user_id"`
	Date           string   `gorm:"uniqueIndex:idx_counters_user_date;type:varchar(10);not null" json:"date"` // UTC calendar day, 2006-01-02
	Present        bool     `gorm:"default:false" json:"present"`
	PointsEarned   int      `gorm:"default:0" json:"points_earned"`
	PracticeSpaces SpaceSet `gorm:"serializer:json" json:"practice_spaces"`
	SharePostCount int      `gorm:"default:0" json:"share_post_count"`
	LightSendCount int      `gorm:"default:0" json:"light_send_count"`
	TuneMinutes    int      `gorm:"default:0" json:"tune_minutes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
