package services

import (
	"mindful-progress-system/config"
)

// pointsFor maps an event payload to the points it earns. TunePlay earns per
// full minute listened — sub-minute listening earns nothing, there is no
// partial credit. A payload the switch does not know earns 0; rejecting
// unknown kinds is the validator's job, not this function's.
func pointsFor(cfg config.Engagement, meta Metadata) int {
	switch m := meta.(type) {
	case TunePlayMetadata:
		return m.DurationSeconds / 60 * cfg.TunePointPerMinute
	case PracticeCompleteMetadata:
		return cfg.PracticePoints
	case SharePostMetadata:
		return cfg.SharePoints
	case LightSendMetadata:
		return cfg.LightPoints
	default:
		return 0
	}
}
