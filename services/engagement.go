package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"mindful-progress-system/config"
	"mindful-progress-system/metrics"
	"mindful-progress-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngagementService is the gamification engine: it turns submitted user
// actions into points, enforces daily caps, maintains the per-day rollup and
// unlocks milestones. Every derived value (streak, lifetime days, sparkline)
// is recomputed from the database on each call — there is no cache and no
// background job.
type EngagementService struct {
	DB    *gorm.DB
	Cfg   config.Engagement
	Clock Clock
}

func NewEngagementService(db *gorm.DB, cfg config.Engagement, clock Clock) *EngagementService {
	return &EngagementService{DB: db, Cfg: cfg, Clock: clock}
}

// SubmitEventRequest is the submission payload. UserID falls back to the
// configured placeholder, OccurredAt to the current instant.
type SubmitEventRequest struct {
	UserID     string           `json:"userId"`
	Kind       models.EventKind `json:"kind"`
	Metadata   RawMetadata      `json:"metadata"`
	OccurredAt *time.Time       `json:"occurredAt"`
}

// SubmitResult is the submission outcome. A cap denial is a success-shaped
// result with Success=false and a reason in Message — not an error.
type SubmitResult struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message,omitempty"`
	PointsEarned     int               `json:"pointsEarned"`
	TodayTotalPoints int               `json:"todayTotalPoints"`
	Streak           int               `json:"streak"`
	LifetimeDays     int               `json:"lifetimeDays"`
	MilestoneGranted *config.Milestone `json:"milestoneGranted"`
}

// SubmitEvent runs a submission through the full pipeline:
// validate → cap check → persist → recompute → milestone check.
func (s *EngagementService) SubmitEvent(req SubmitEventRequest) (*SubmitResult, error) {
	if req.Kind == "" {
		return nil, &ValidationError{Field: "kind", Message: "is required"}
	}
	if !req.Kind.Valid() {
		return nil, &ValidationError{Field: "kind", Message: fmt.Sprintf("unknown event kind %q", req.Kind)}
	}
	meta, err := ParseMetadata(req.Kind, req.Metadata)
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = s.Cfg.DefaultUserID
	}

	now := s.Clock.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}
	today := dateOf(now)

	counter, err := s.counterFor(userID, today)
	if err != nil {
		return nil, err
	}

	if d := checkCap(s.Cfg, meta, counter); !d.Allowed {
		log.Printf("cap denied: user=%s kind=%s reason=%q", userID, req.Kind, d.Reason)
		metrics.EventsSubmitted.WithLabelValues(string(req.Kind), "denied").Inc()
		return &SubmitResult{Success: false, Message: d.Reason}, nil
	}

	points := pointsFor(s.Cfg, meta)

	event := models.Event{
		ID:            uuid.NewString(),
		UserID:        userID,
		Kind:          req.Kind,
		Metadata:      meta.fields(),
		OccurredAt:    occurredAt,
		PointsAwarded: points,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, err
	}

	// The event append and the counter merge are two separate writes. The
	// event log is the source of truth; if the merge fails after the append
	// succeeded, a client retry may double-count (at-least-once semantics).
	merged, err := s.mergeCounter(userID, today, meta, points)
	if err != nil {
		return nil, err
	}

	streak, err := s.CurrentStreak(userID)
	if err != nil {
		return nil, err
	}
	lifetime, err := s.LifetimeDays(userID)
	if err != nil {
		return nil, err
	}

	granted, err := s.evaluateMilestone(userID, lifetime, streak)
	if err != nil {
		return nil, err
	}

	metrics.EventsSubmitted.WithLabelValues(string(req.Kind), "recorded").Inc()
	return &SubmitResult{
		Success:          true,
		PointsEarned:     points,
		TodayTotalPoints: merged.PointsEarned,
		Streak:           streak,
		LifetimeDays:     lifetime,
		MilestoneGranted: granted,
	}, nil
}

// counterFor returns the user's counter row for date, or nil when none
// exists yet.
func (s *EngagementService) counterFor(userID, date string) (*models.DailyCounter, error) {
	var c models.DailyCounter
	err := s.DB.Where("user_id = ? AND date = ?", userID, date).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// mergeCounter folds one event into the day's rollup: create the row seeded
// from this event, or add the event's contribution to an existing row. The
// present flag is set unconditionally.
func (s *EngagementService) mergeCounter(userID, date string, meta Metadata, points int) (*models.DailyCounter, error) {
	var merged models.DailyCounter
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var c models.DailyCounter
		err := tx.Where("user_id = ? AND date = ?", userID, date).First(&c).Error
		create := false
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = models.DailyCounter{ID: uuid.NewString(), UserID: userID, Date: date}
			create = true
		} else if err != nil {
			return err
		}

		c.Present = true
		c.PointsEarned += points
		switch m := meta.(type) {
		case TunePlayMetadata:
			c.TuneMinutes += m.DurationSeconds / 60
		case PracticeCompleteMetadata:
			c.PracticeSpaces = c.PracticeSpaces.Add(m.SpaceKey)
		case SharePostMetadata:
			c.SharePostCount++
		case LightSendMetadata:
			c.LightSendCount++
		}

		if create {
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&c).Error; err != nil {
			return err
		}
		merged = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}
