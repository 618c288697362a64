package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

func TestVoice_SuccessFillsTaxiDropdown(t *testing.T) {
	var req domain.VoiceRequest
	backend := &MockBackend{
		VoiceDestinationFunc: func(_ context.Context, r domain.VoiceRequest) (*domain.VoiceResult, error) {
			req = r
			return &domain.VoiceResult{SpeechText: "강남역", Places: gangnamPlaces}, nil
		},
	}
	f := newFixture(t, backend)

	require.NoError(t, f.dash.Voice().Capture(context.Background()))

	assert.Equal(t, DefaultVoiceRequest, req)
	view := f.dash.Taxi().View()
	assert.Equal(t, "강남역", view.Input)
	assert.True(t, view.DropdownOpen())
	assert.Len(t, view.Items, 2)
	assert.Equal(t, `인식: "강남역" - 아래에서 선택하세요`, view.Status)
	assert.False(t, f.dash.Voice().Busy())
	assert.Equal(t, 0, f.clock.Armed())

	ok, err := f.dash.Taxi().Select(context.Background(), view.Generation, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVoice_FailureShowsPartialText(t *testing.T) {
	backend := &MockBackend{
		VoiceDestinationFunc: func(_ context.Context, _ domain.VoiceRequest) (*domain.VoiceResult, error) {
			return &domain.VoiceResult{SpeechText: "강남"}, domain.NewBackendError("장소를 찾을 수 없습니다")
		},
	}
	f := newFixture(t, backend)

	err := f.dash.Voice().Capture(context.Background())

	require.Error(t, err)
	view := f.dash.Taxi().View()
	assert.Equal(t, "강남", view.Input)
	assert.False(t, view.DropdownOpen())
	assert.Equal(t, `오류: 장소를 찾을 수 없습니다 (인식: "강남")`, view.Status)
	assert.False(t, f.dash.Voice().Busy())
}

func TestVoice_ConnectionError(t *testing.T) {
	backend := &MockBackend{
		VoiceDestinationFunc: func(_ context.Context, _ domain.VoiceRequest) (*domain.VoiceResult, error) {
			return nil, &domain.TransportError{Op: "voice_destination", Err: errors.New("no route to host")}
		},
	}
	f := newFixture(t, backend)

	err := f.dash.Voice().Capture(context.Background())

	require.ErrorIs(t, err, domain.ErrConnection)
	assert.Equal(t, "연결 오류: no route to host", f.dash.Taxi().View().Status)
	assert.False(t, f.dash.Voice().Busy())
}

func TestVoice_BusyRejectsSecondCapture(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	backend := &MockBackend{
		VoiceDestinationFunc: func(_ context.Context, _ domain.VoiceRequest) (*domain.VoiceResult, error) {
			close(started)
			<-release
			return &domain.VoiceResult{SpeechText: "서면"}, nil
		},
	}
	f := newFixture(t, backend)
	voice := f.dash.Voice()

	done := make(chan error, 1)
	go func() { done <- voice.Capture(context.Background()) }()
	<-started

	assert.True(t, voice.Busy())
	assert.Equal(t, "마이크로 목적지를 말해주세요...", f.dash.Taxi().View().Status)
	assert.ErrorIs(t, voice.Capture(context.Background()), domain.ErrVoiceBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, voice.Busy())
	assert.Equal(t, 1, backend.CallCount("VoiceDestination"))
}

func TestVoice_SupersedesTypedSearch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	backend := &MockBackend{
		SearchPlacesFunc: func(_ context.Context, _ string) (*domain.PlaceSearch, error) {
			close(started)
			<-release
			return &domain.PlaceSearch{Places: gangnamPlaces}, nil
		},
		VoiceDestinationFunc: func(_ context.Context, _ domain.VoiceRequest) (*domain.VoiceResult, error) {
			return &domain.VoiceResult{SpeechText: "서면", Places: []domain.Place{seomyeon}}, nil
		},
	}
	f := newFixture(t, backend)

	typed := make(chan error, 1)
	go func() { typed <- f.dash.Taxi().Search(context.Background(), "강남") }()
	<-started
	require.NoError(t, f.dash.Voice().Capture(context.Background()))
	close(release)

	assert.ErrorIs(t, <-typed, domain.ErrStaleResponse)
	items := f.dash.Taxi().View().Items
	require.Len(t, items, 1)
	assert.Equal(t, "서면역", items[0].Title)
}

func TestVoice_FailureKeepsDropdownClosedOverTypedSearch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	typed := make(chan error, 1)
	var f *dashboardFixture
	backend := &MockBackend{
		SearchPlacesFunc: func(_ context.Context, _ string) (*domain.PlaceSearch, error) {
			close(started)
			<-release
			return &domain.PlaceSearch{Places: gangnamPlaces}, nil
		},
		VoiceDestinationFunc: func(_ context.Context, _ domain.VoiceRequest) (*domain.VoiceResult, error) {
			close(release)
			assert.ErrorIs(t, <-typed, domain.ErrStaleResponse)
			assert.Equal(t, "마이크로 목적지를 말해주세요...", f.dash.Taxi().View().Status)
			return nil, domain.NewBackendError("음성을 인식하지 못했습니다")
		},
	}
	f = newFixture(t, backend)
	taxi := f.dash.Taxi()

	go func() { typed <- taxi.Search(context.Background(), "강남") }()
	<-started

	require.Error(t, f.dash.Voice().Capture(context.Background()))

	view := taxi.View()
	assert.False(t, view.DropdownOpen())
	assert.Empty(t, view.Items)
	assert.Equal(t, domain.StateIdle, view.State)
	assert.Equal(t, "오류: 음성을 인식하지 못했습니다", view.Status)
}

func TestVoice_CancelsPendingTypedSearch(t *testing.T) {
	backend := &MockBackend{
		VoiceDestinationFunc: func(_ context.Context, _ domain.VoiceRequest) (*domain.VoiceResult, error) {
			return nil, domain.NewBackendError("음성을 인식하지 못했습니다")
		},
	}
	f := newFixture(t, backend)

	f.dash.Taxi().OnInput("강남")
	require.Error(t, f.dash.Voice().Capture(context.Background()))

	assert.Equal(t, 0, f.clock.FireAll())
	assert.Zero(t, backend.CallCount("SearchPlaces"))
	assert.False(t, f.dash.Taxi().View().DropdownOpen())
}
