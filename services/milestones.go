package services

import (
	"errors"
	"log"

	"mindful-progress-system/config"
	"mindful-progress-system/metrics"
	"mindful-progress-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// evaluateMilestone grants the highest ladder rung the user newly qualifies
// for, or returns nil when nothing new unlocked. Only the single highest
// eligible rung is granted — a user who jumps several thresholds at once
// skips the intermediate rungs, and skipped rungs are never backfilled, so a
// grant history may have gaps relative to the ladder.
func (s *EngagementService) evaluateMilestone(userID string, lifetimeDays, streak int) (*config.Milestone, error) {
	var grants []models.MilestoneGrant
	if err := s.DB.Where("user_id = ?", userID).Find(&grants).Error; err != nil {
		return nil, err
	}
	granted := make(map[int]bool, len(grants))
	for _, g := range grants {
		granted[g.MilestoneID] = true
	}

	for i := len(s.Cfg.Milestones) - 1; i >= 0; i-- {
		m := s.Cfg.Milestones[i]
		if granted[m.ID] {
			// Everything below the highest held rung stays skipped forever.
			break
		}
		if lifetimeDays < m.LifetimeDays || streak < m.ConsecutiveDays {
			continue
		}

		grant := models.MilestoneGrant{ID: uuid.NewString(), UserID: userID, MilestoneID: m.ID}
		if err := s.DB.Create(&grant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent request granted it first; their grant stands.
				return nil, nil
			}
			return nil, err
		}

		log.Printf("milestone granted: user=%s milestone=%d (%s)", userID, m.ID, m.Name)
		metrics.MilestonesGranted.Inc()
		ms := m
		return &ms, nil
	}
	return nil, nil
}
