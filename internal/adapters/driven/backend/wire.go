package backend

import "github.com/custodia-labs/smartmirror-cli/internal/core/domain"

// envelope is the status part shared by every reply.
type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// failure returns the reply's error, or nil for a successful reply.
// listEmpty marks search replies that came back with no results: an error
// text next to an empty list is reported, a bare empty list is not.
func (e envelope) failure(listEmpty bool) error {
	if !e.OK {
		return domain.NewBackendError(e.Error)
	}
	if listEmpty && e.Error != "" {
		return domain.NewBackendError(e.Error)
	}
	return nil
}

// searchFailure is failure for search endpoints, where ok:false without an
// error text means "nothing found".
func (e envelope) searchFailure(listEmpty bool) error {
	if !e.OK && e.Error == "" {
		return nil
	}
	return e.failure(listEmpty)
}

type placeReply struct {
	envelope
	AllPlaces []domain.Place   `json:"all_places"`
	Taxi      *domain.TaxiInfo `json:"taxi,omitempty"`
}

type stopReply struct {
	envelope
	AllStops []domain.BusStop `json:"all_stops"`
}

type arrivalsReply struct {
	envelope
	domain.BusArrivals
}

type stationReply struct {
	envelope
	AllStations []domain.SubwayStation `json:"all_stations"`
}

type scheduleReply struct {
	envelope
	domain.SubwaySchedule
}

type defaultStationReply struct {
	envelope
	Station *domain.SubwayStation `json:"station,omitempty"`
	domain.SubwaySchedule
}

type voiceReply struct {
	envelope
	SpeechText string         `json:"speech_text"`
	AllPlaces  []domain.Place `json:"all_places,omitempty"`
}

type commuteReply struct {
	envelope
	domain.CommuteResponse
}
