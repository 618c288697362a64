package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// Ensure VoiceSession implements the interface.
var _ driving.VoiceService = (*VoiceSession)(nil)

// DefaultVoiceRequest matches the kiosk's push-to-talk button.
var DefaultVoiceRequest = domain.VoiceRequest{Engine: "google", TimeoutSeconds: 5.0}

// VoiceSession runs one-shot voice searches into the taxi session.
// The taxi session's input, dropdown and status area are shared.
type VoiceSession struct {
	backend driven.Backend
	taxi    *Session[domain.Place, domain.TaxiPanel]
	labels  *LabelBox
	req     domain.VoiceRequest
	busy    atomic.Bool
	log     logger.Scoped
}

// NewVoiceSession creates a voice session feeding taxi.
func NewVoiceSession(
	backend driven.Backend, taxi *Session[domain.Place, domain.TaxiPanel], labels *LabelBox, req domain.VoiceRequest,
) *VoiceSession {
	if req.Engine == "" {
		req.Engine = DefaultVoiceRequest.Engine
	}
	if req.TimeoutSeconds <= 0 {
		req.TimeoutSeconds = DefaultVoiceRequest.TimeoutSeconds
	}
	if labels == nil {
		labels = NewLabelBox(nil)
	}
	return &VoiceSession{
		backend: backend,
		taxi:    taxi,
		labels:  labels,
		req:     req,
		log:     logger.For("voice"),
	}
}

// Busy reports whether a capture is in flight.
func (v *VoiceSession) Busy() bool {
	return v.busy.Load()
}

// Capture records one utterance and shows the candidates in the taxi dropdown.
func (v *VoiceSession) Capture(ctx context.Context) error {
	if !v.busy.CompareAndSwap(false, true) {
		return domain.ErrVoiceBusy
	}

	labels := v.labels.Get()
	v.taxi.Dismiss()
	v.taxi.SetStatus(labels.VoicePrompt)
	v.log.Debug("capture engine=%s timeout=%.1fs", v.req.Engine, v.req.TimeoutSeconds)

	res, err := v.backend.VoiceDestination(ctx, v.req)

	// Re-enable before publishing so observers never see a stale busy flag.
	v.busy.Store(false)

	if err != nil {
		status := voiceErrorStatus(labels, err)
		if res != nil && res.SpeechText != "" && !errors.Is(err, domain.ErrConnection) {
			v.taxi.SetInput(res.SpeechText)
			status += fmt.Sprintf(labels.VoicePartialFormat, res.SpeechText)
		}
		v.taxi.SetStatus(status)
		v.log.Warn("capture failed: %v", err)
		return err
	}

	v.taxi.SetInput(res.SpeechText)
	v.taxi.ShowResults(res.Places)
	v.taxi.SetStatus(fmt.Sprintf(labels.VoiceRecognizedFormat, res.SpeechText))
	v.log.Info("heard %q, %d places", res.SpeechText, len(res.Places))
	return nil
}

func voiceErrorStatus(l *domain.Labels, err error) string {
	if msg, ok := domain.BackendMessage(err); ok {
		return fmt.Sprintf(l.ErrorFormat, msg)
	}
	return fmt.Sprintf(l.ConnectionErrorFormat, domain.CauseText(err))
}
