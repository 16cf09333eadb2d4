package services

import (
	"path/filepath"
	"testing"
	"time"

	"mindful-progress-system/config"
	"mindful-progress-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "engagement.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.DailyCounter{}, &models.MilestoneGrant{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

func (f *fixedClock) advanceDays(n int) {
	f.now = f.now.AddDate(0, 0, n)
}

func newTestService(t *testing.T) (*EngagementService, *fixedClock) {
	t.Helper()
	clk := &fixedClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewEngagementService(openTestDB(t), config.Default(), clk), clk
}

// seedPresentDay inserts a present counter row `daysAgo` days before the
// clock's today.
func seedPresentDay(t *testing.T, svc *EngagementService, userID string, daysAgo int, points int) {
	t.Helper()
	date := dateOf(svc.Clock.Now().AddDate(0, 0, -daysAgo))
	row := models.DailyCounter{
		ID:           uuid.NewString(),
		UserID:       userID,
		Date:         date,
		Present:      true,
		PointsEarned: points,
	}
	if err := svc.DB.Create(&row).Error; err != nil {
		t.Fatalf("seed counter for %s: %v", date, err)
	}
}
