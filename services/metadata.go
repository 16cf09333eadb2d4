package services

import (
	"fmt"
	"strings"

	"mindful-progress-system/models"

	"github.com/gosimple/slug"
)

// Metadata is the per-kind event payload. Each variant declares exactly the
// fields its kind requires; ParseMetadata enforces them up front so the rest
// of the pipeline never probes a loose map with zero-value fallbacks.
type Metadata interface {
	// fields returns the payload as persisted on the event row.
	fields() map[string]any
}

// TunePlayMetadata carries how long the user listened.
type TunePlayMetadata struct {
	DurationSeconds int
}

func (m TunePlayMetadata) fields() map[string]any {
	return map[string]any{"durationSeconds": m.DurationSeconds}
}

// PracticeCompleteMetadata carries the practice space that was completed.
// SpaceKey is the slug-normalized form used for the per-space daily cap, so
// "Slow Morning" and "slow  morning" count as the same space.
type PracticeCompleteMetadata struct {
	Space    string
	SpaceKey string
}

func (m PracticeCompleteMetadata) fields() map[string]any {
	return map[string]any{"space": m.Space, "spaceKey": m.SpaceKey}
}

// SharePostMetadata has no required fields.
type SharePostMetadata struct{}

func (SharePostMetadata) fields() map[string]any { return nil }

// LightSendMetadata has no required fields.
type LightSendMetadata struct{}

func (LightSendMetadata) fields() map[string]any { return nil }

// RawMetadata is the wire shape of the metadata object before per-kind
// validation.
type RawMetadata struct {
	DurationSeconds *int   `json:"durationSeconds"`
	Space           string `json:"space"`
}

// ParseMetadata validates raw against the kind's requirements and returns
// the typed payload.
func ParseMetadata(kind models.EventKind, raw RawMetadata) (Metadata, error) {
	switch kind {
	case models.KindTunePlay:
		secs := 0
		if raw.DurationSeconds != nil {
			secs = *raw.DurationSeconds
		}
		if secs < 0 {
			return nil, &ValidationError{Field: "metadata.durationSeconds", Message: "must not be negative"}
		}
		return TunePlayMetadata{DurationSeconds: secs}, nil
	case models.KindPracticeComplete:
		space := strings.TrimSpace(raw.Space)
		if space == "" {
			return nil, &ValidationError{Field: "metadata.space", Message: "is required for PracticeComplete"}
		}
		return PracticeCompleteMetadata{Space: space, SpaceKey: slug.Make(space)}, nil
	case models.KindSharePost:
		return SharePostMetadata{}, nil
	case models.KindLightSend:
		return LightSendMetadata{}, nil
	default:
		return nil, &ValidationError{Field: "kind", Message: fmt.Sprintf("unknown event kind %q", kind)}
	}
}
