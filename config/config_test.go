package config

import (
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate_LadderMonotonicity(t *testing.T) {
	cfg := Default()
	cfg.Milestones = []Milestone{
		{ID: 1, LifetimeDays: 7, ConsecutiveDays: 3, Name: "A"},
		{ID: 2, LifetimeDays: 3, ConsecutiveDays: 5, Name: "B"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("decreasing lifetime threshold accepted")
	}

	cfg.Milestones = []Milestone{
		{ID: 1, LifetimeDays: 3, ConsecutiveDays: 5, Name: "A"},
		{ID: 2, LifetimeDays: 7, ConsecutiveDays: 5, Name: "B"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("flat consecutive threshold accepted")
	}
}

func TestValidate_EmptyLadder(t *testing.T) {
	cfg := Default()
	cfg.Milestones = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty ladder accepted")
	}
}

func TestValidate_Caps(t *testing.T) {
	cfg := Default()
	cfg.LightSendDailyCap = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero cap accepted")
	}
}

func TestMilestoneByID(t *testing.T) {
	cfg := Default()
	m, ok := cfg.MilestoneByID(3)
	if !ok || m.Name == "" {
		t.Fatalf("lookup rung 3 = %+v, %v", m, ok)
	}
	if _, ok := cfg.MilestoneByID(999); ok {
		t.Fatal("found a rung that does not exist")
	}
}
