package services

import (
	"testing"

	"mindful-progress-system/config"
)

func TestPointsFor_TunePlay(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name    string
		seconds int
		want    int
	}{
		{"sub-minute earns nothing", 59, 0},
		{"zero seconds", 0, 0},
		{"exactly one minute", 60, 1},
		{"floor not round", 125, 2},
		{"long session", 3600, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointsFor(cfg, TunePlayMetadata{DurationSeconds: tt.seconds})
			if got != tt.want {
				t.Errorf("pointsFor(%ds) = %d, want %d", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestPointsFor_FlatKinds(t *testing.T) {
	cfg := config.Default()

	if got := pointsFor(cfg, PracticeCompleteMetadata{Space: "Slow Morning", SpaceKey: "slow-morning"}); got != cfg.PracticePoints {
		t.Errorf("practice = %d, want %d", got, cfg.PracticePoints)
	}
	if got := pointsFor(cfg, SharePostMetadata{}); got != cfg.SharePoints {
		t.Errorf("share = %d, want %d", got, cfg.SharePoints)
	}
	if got := pointsFor(cfg, LightSendMetadata{}); got != cfg.LightPoints {
		t.Errorf("light = %d, want %d", got, cfg.LightPoints)
	}
}

func TestPointsFor_UnknownPayload(t *testing.T) {
	if got := pointsFor(config.Default(), nil); got != 0 {
		t.Errorf("unknown payload = %d, want 0", got)
	}
}
