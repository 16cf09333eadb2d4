package config

import "fmt"

// Milestone is one rung of the static milestone ladder. A rung unlocks once
// when the user's lifetime days AND current streak both reach its thresholds.
type Milestone struct {
	ID              int    `json:"id"`
	LifetimeDays    int    `json:"lifetime_days"`
	ConsecutiveDays int    `json:"consecutive_days"`
	Name            string `json:"name"`
	Description     string `json:"description"`
}

// Engagement holds the full gamification rule set: point values, daily caps
// and the milestone ladder. It is constructed once at startup, validated,
// and passed into the engine by value — nothing here is mutated afterwards.
type Engagement struct {
	// Point values per event kind. TunePlay earns per full minute listened,
	// the other kinds earn a flat amount.
	TunePointPerMinute int
	PracticePoints     int
	SharePoints        int
	LightPoints        int

	// Daily caps. PracticeComplete is capped per space per day and needs no
	// numeric cap here.
	SharePostDailyCap int
	LightSendDailyCap int

	// DailyTarget is the soft UI goal shown alongside today's points. It is
	// static and never derived from user data.
	DailyTarget int

	// DefaultUserID is the placeholder identity used for unauthenticated
	// and local development requests.
	DefaultUserID string

	// Milestones is ordered lowest to highest; both thresholds must be
	// strictly increasing rung to rung.
	Milestones []Milestone
}

// Default returns the production rule set.
func Default() Engagement {
	return Engagement{
		TunePointPerMinute: 1,
		PracticePoints:     5,
		SharePoints:        3,
		LightPoints:        1,
		SharePostDailyCap:  1,
		LightSendDailyCap:  3,
		DailyTarget:        10,
		DefaultUserID:      "local-dev-user",
		Milestones: []Milestone{
			{ID: 1, LifetimeDays: 1, ConsecutiveDays: 1, Name: "First Stillness", Description: "You showed up for your first practice."},
			{ID: 2, LifetimeDays: 3, ConsecutiveDays: 2, Name: "Settling In", Description: "Three days of presence, two in a row."},
			{ID: 3, LifetimeDays: 7, ConsecutiveDays: 3, Name: "One Quiet Week", Description: "Seven days of practice behind you."},
			{ID: 4, LifetimeDays: 14, ConsecutiveDays: 5, Name: "Deepening", Description: "Two weeks in, and the habit is forming."},
			{ID: 5, LifetimeDays: 30, ConsecutiveDays: 7, Name: "A Month of Presence", Description: "Thirty days of showing up for yourself."},
			{ID: 6, LifetimeDays: 60, ConsecutiveDays: 14, Name: "Steady Ground", Description: "Sixty days, with a two-week unbroken run."},
			{ID: 7, LifetimeDays: 100, ConsecutiveDays: 21, Name: "Hundred Days", Description: "One hundred days of practice."},
		},
	}
}

// Validate fails fast on a rule set the engine cannot run with. The milestone
// engine assumes the ladder is ordered and strictly monotonic in both
// thresholds, so that is enforced here instead of trusted implicitly.
func (c Engagement) Validate() error {
	if c.TunePointPerMinute < 0 || c.PracticePoints < 0 || c.SharePoints < 0 || c.LightPoints < 0 {
		return fmt.Errorf("point values must be non-negative")
	}
	if c.SharePostDailyCap < 1 {
		return fmt.Errorf("share post daily cap must be at least 1, got %d", c.SharePostDailyCap)
	}
	if c.LightSendDailyCap < 1 {
		return fmt.Errorf("light send daily cap must be at least 1, got %d", c.LightSendDailyCap)
	}
	if c.DailyTarget < 1 {
		return fmt.Errorf("daily target must be positive, got %d", c.DailyTarget)
	}
	if c.DefaultUserID == "" {
		return fmt.Errorf("default user id must not be empty")
	}
	if len(c.Milestones) == 0 {
		return fmt.Errorf("milestone ladder must not be empty")
	}
	for i, m := range c.Milestones {
		if m.LifetimeDays < 1 || m.ConsecutiveDays < 1 {
			return fmt.Errorf("milestone %d: thresholds must be at least 1", m.ID)
		}
		if i == 0 {
			continue
		}
		prev := c.Milestones[i-1]
		if m.ID <= prev.ID {
			return fmt.Errorf("milestone ladder: id %d does not increase after %d", m.ID, prev.ID)
		}
		if m.LifetimeDays <= prev.LifetimeDays {
			return fmt.Errorf("milestone %d: lifetime days %d does not increase after %d", m.ID, m.LifetimeDays, prev.LifetimeDays)
		}
		if m.ConsecutiveDays <= prev.ConsecutiveDays {
			return fmt.Errorf("milestone %d: consecutive days %d does not increase after %d", m.ID, m.ConsecutiveDays, prev.ConsecutiveDays)
		}
	}
	return nil
}

// MilestoneByID looks up a ladder rung by id.
func (c Engagement) MilestoneByID(id int) (Milestone, bool) {
	for _, m := range c.Milestones {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}
