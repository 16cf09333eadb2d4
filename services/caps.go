package services

import (
	"fmt"

	"mindful-progress-system/config"
	"mindful-progress-system/models"
)

// CapDecision is the outcome of a daily-cap check. Reason is human-readable
// and goes straight into the denial response.
type CapDecision struct {
	Allowed bool
	Reason  string
}

func allow() CapDecision { return CapDecision{Allowed: true} }

func deny(reason string) CapDecision { return CapDecision{Reason: reason} }

// checkCap decides whether an event may still earn points today. today is
// the user's counter row for the current date, or nil when no event has been
// recorded yet — which always allows, since every sub-counter is zero.
//
// PracticeComplete is capped per space per day, not per day overall: a user
// may complete several different spaces in one day, but each space only once.
// The check runs against the row read before the write; two concurrent
// requests can both see "not yet capped" and both pass, letting a cap be
// exceeded by a small margin under races. Under sequential load the caps are
// exact.
func checkCap(cfg config.Engagement, meta Metadata, today *models.DailyCounter) CapDecision {
	switch m := meta.(type) {
	case PracticeCompleteMetadata:
		if m.SpaceKey == "" {
			return deny("missing space")
		}
		if today != nil && today.PracticeSpaces.Contains(m.SpaceKey) {
			return deny(fmt.Sprintf("already completed %q today", m.Space))
		}
	case SharePostMetadata:
		if today != nil && today.SharePostCount >= cfg.SharePostDailyCap {
			return deny("daily share limit reached")
		}
	case LightSendMetadata:
		if today != nil && today.LightSendCount >= cfg.LightSendDailyCap {
			return deny(fmt.Sprintf("daily light limit of %d reached", cfg.LightSendDailyCap))
		}
	}
	return allow()
}
