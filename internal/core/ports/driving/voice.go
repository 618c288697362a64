package driving

import "context"

// VoiceService runs push-to-talk destination searches.
type VoiceService interface {
	// Capture records one utterance and shows the matching places in the
	// taxi dropdown. It returns domain.ErrVoiceBusy while a capture runs.
	Capture(ctx context.Context) error

	// Busy reports whether a capture is in flight.
	Busy() bool
}
