package services

import (
	"time"

	"mindful-progress-system/models"
)

// sparklineDays is the fixed length of the recent-activity series.
const sparklineDays = 30

// ProgressMilestone is one granted milestone in the progress view, with its
// display copy resolved from the ladder.
type ProgressMilestone struct {
	ID        int       `json:"id"`
	Name      string    `json:"name,omitempty"`
	GrantedAt time.Time `json:"grantedAt"`
}

// Progress is the read-only view of a user's engagement state, assembled
// fresh on every call.
type Progress struct {
	TodayPoints  int                 `json:"todayPoints"`
	PresentToday bool                `json:"presentToday"`
	Streak       int                 `json:"streak"`
	LifetimeDays int                 `json:"lifetimeDays"`
	Milestones   []ProgressMilestone `json:"milestones"`
	Sparkline    []int               `json:"sparkline"`
	DailyTarget  int                 `json:"dailyTarget"`
}

// Progress composes today's counter, streak, lifetime days, grants and the
// 30-day sparkline.
func (s *EngagementService) Progress(userID string) (*Progress, error) {
	if userID == "" {
		userID = s.Cfg.DefaultUserID
	}

	today := dateOf(s.Clock.Now())
	counter, err := s.counterFor(userID, today)
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

	var grants []models.MilestoneGrant
	if err := s.DB.Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	milestones := make([]ProgressMilestone, 0, len(grants))
	for _, g := range grants {
		pm := ProgressMilestone{ID: g.MilestoneID, GrantedAt: g.GrantedAt}
		// A grant for a rung the ladder no longer carries keeps its id but
		// has no copy to show.
		if m, ok := s.Cfg.MilestoneByID(g.MilestoneID); ok {
			pm.Name = m.Name
		}
		milestones = append(milestones, pm)
	}

	sparkline, err := s.recentSeries(userID, sparklineDays)
	if err != nil {
		return nil, err
	}

	p := &Progress{
		Streak:       streak,
		LifetimeDays: lifetime,
		Milestones:   milestones,
		Sparkline:    sparkline,
		DailyTarget:  s.Cfg.DailyTarget,
	}
	if counter != nil {
		p.TodayPoints = counter.PointsEarned
		p.PresentToday = counter.Present
	}
	return p, nil
}

// recentSeries builds the per-day points series for the last `days` calendar
// days ending today, oldest first. Days without a counter row are 0; the
// result always has exactly `days` entries regardless of account age.
func (s *EngagementService) recentSeries(userID string, days int) ([]int, error) {
	now := s.Clock.Now().UTC()
	start := dateOf(now.AddDate(0, 0, -(days - 1)))

	var rows []models.DailyCounter
	err := s.DB.Where("user_id = ? AND date >= ?", userID, start).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r.PointsEarned
	}

	series := make([]int, days)
	for i := 0; i < days; i++ {
		series[i] = byDate[dateOf(now.AddDate(0, 0, -(days-1-i)))]
	}
	return series, nil
}
