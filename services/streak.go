package services

import (
	"mindful-progress-system/models"
)

// streakWindowDays bounds how far back the streak walk looks. Streaks longer
// than the window are reported as the window size — a resource bound, not a
// correctness target.
const streakWindowDays = 30

// CurrentStreak derives the consecutive-presence streak ending at today. The
// walk starts at today and breaks at the first missing day, so a user who
// has not practiced today reports 0 even when yesterday closed a long run.
// The product counts the streak as broken the moment today is unpracticed;
// keep that in mind before "fixing" it.
func (s *EngagementService) CurrentStreak(userID string) (int, error) {
	var rows []models.DailyCounter
	err := s.DB.Where("user_id = ? AND present = ?", userID, true).
		Order("date DESC").
		Limit(streakWindowDays).
		Find(&rows).Error
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[r.Date] = true
	}

	streak := 0
	day := s.Clock.Now().UTC()
	for present[dateOf(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// LifetimeDays counts the distinct days the user has ever been present.
func (s *EngagementService) LifetimeDays(userID string) (int, error) {
	var n int64
	err := s.DB.Model(&models.DailyCounter{}).
		Where("user_id = ? AND present = ?", userID, true).
		Count(&n).Error
	return int(n), err
}
