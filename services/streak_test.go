package services

import (
	"testing"
)

func TestCurrentStreak_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	streak, err := svc.CurrentStreak("nobody")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestCurrentStreak_ConsecutiveDays(t *testing.T) {
	svc, _ := newTestService(t)

	// Present today, yesterday and the day before; gap at D-3.
	seedPresentDay(t, svc, "u1", 0, 5)
	seedPresentDay(t, svc, "u1", 1, 5)
	seedPresentDay(t, svc, "u1", 2, 5)
	seedPresentDay(t, svc, "u1", 4, 5)

	streak, err := svc.CurrentStreak("u1")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestCurrentStreak_BreaksWhenTodayMissing(t *testing.T) {
	svc, _ := newTestService(t)

	// A solid run through yesterday, nothing yet today. The walk starts at
	// today, so the reported streak is 0 until today's first event lands.
	for daysAgo := 1; daysAgo <= 5; daysAgo++ {
		seedPresentDay(t, svc, "u1", daysAgo, 5)
	}

	streak, err := svc.CurrentStreak("u1")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0 when today is unpracticed", streak)
	}
}

func TestCurrentStreak_WindowBound(t *testing.T) {
	svc, _ := newTestService(t)

	// 40 consecutive present days; only the 30-row window is scanned.
	for daysAgo := 0; daysAgo < 40; daysAgo++ {
		seedPresentDay(t, svc, "u1", daysAgo, 5)
	}

	streak, err := svc.CurrentStreak("u1")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != streakWindowDays {
		t.Errorf("streak = %d, want window bound %d", streak, streakWindowDays)
	}
}

func TestLifetimeDays_CountsDistinctPresentDays(t *testing.T) {
	svc, _ := newTestService(t)

	seedPresentDay(t, svc, "u1", 0, 5)
	seedPresentDay(t, svc, "u1", 3, 5)
	seedPresentDay(t, svc, "u1", 90, 5)
	seedPresentDay(t, svc, "other", 0, 5)

	days, err := svc.LifetimeDays("u1")
	if err != nil {
		t.Fatalf("lifetime: %v", err)
	}
	if days != 3 {
		t.Errorf("lifetime days = %d, want 3", days)
	}
}
