package domain

// Place is a destination candidate from a place search.
type Place struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// HasCoordinates reports whether both coordinates are set.
// A zero latitude or longitude means "not yet selected".
func (p Place) HasCoordinates() bool {
	return p.Lat != 0 && p.Lon != 0
}

// TaxiInfo is the ride estimate attached to a place search.
type TaxiInfo struct {
	// OK is false when the backend could not route the ride.
	// A missing ok field is treated as success.
	OK            *bool  `json:"ok,omitempty"`
	DurationMin   int    `json:"duration_min"`
	TaxiFare      int    `json:"taxi_fare"`
	DistanceMeter int    `json:"distance_meter"`
	Error         string `json:"error,omitempty"`
}

// Available reports whether the estimate can be displayed.
func (t *TaxiInfo) Available() bool {
	return t != nil && (t.OK == nil || *t.OK)
}

// PlaceSearch is a place search reply. Taxi is set when the backend
// routed the top candidate.
type PlaceSearch struct {
	Places []Place
	Taxi   *TaxiInfo
}

// VoiceRequest configures one push-to-talk capture.
type VoiceRequest struct {
	// Engine names the recognizer, e.g. "google".
	Engine string `json:"engine"`

	// TimeoutSeconds bounds the capture window on the server.
	TimeoutSeconds float64 `json:"timeout"`
}

// VoiceResult is a voice destination reply. SpeechText may be set even
// when the lookup failed, so callers can show what was heard.
type VoiceResult struct {
	SpeechText string
	Places     []Place
}
