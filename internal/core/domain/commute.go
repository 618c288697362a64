package domain

import "math"

// Mode is a travel mode with its own on-time estimate.
type Mode string

// Travel modes in display order.
const (
	ModeTaxi   Mode = "taxi"
	ModeBus    Mode = "bus"
	ModeSubway Mode = "subway"
)

// AllModes lists the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeTaxi, ModeBus, ModeSubway}
}

// ProbabilityDetail is the structured detail of a mode estimate.
type ProbabilityDetail struct {
	// NotOperating flags that the mode does not run in the queried window.
	NotOperating bool `json:"not_operating,omitempty"`
}

// ProbabilityResult is one mode's on-time estimate.
type ProbabilityResult struct {
	OK bool `json:"ok"`

	// POnTime is the on-time probability in [0,1]; nil when absent.
	POnTime *float64 `json:"p_on_time,omitempty"`

	// MeanMin is the mean trip duration in minutes; nil when absent.
	MeanMin *float64 `json:"mean_min,omitempty"`

	Detail *ProbabilityDetail `json:"detail,omitempty"`
}

// NotOperating reports whether the detail flags the mode as not running.
func (r *ProbabilityResult) NotOperating() bool {
	return r != nil && r.Detail != nil && r.Detail.NotOperating
}

// Eligible reports whether the result counts towards the ambient status:
// successful, operating and carrying a probability.
func (r *ProbabilityResult) Eligible() bool {
	return r != nil && r.OK && !r.NotOperating() && r.POnTime != nil
}

// Probabilities maps each mode to its result. Missing modes are absent.
type Probabilities map[Mode]*ProbabilityResult

// Destination is where the commute ends.
type Destination struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// CommuteRequest is the probability request body.
type CommuteRequest struct {
	ArriveHHMM string      `json:"arrive_hhmm"`
	Dest       Destination `json:"dest"`
}

// CommuteResponse is the probability reply.
type CommuteResponse struct {
	Now           string        `json:"now"`
	ArriveHHMM    string        `json:"arrive_hhmm"`
	TimeBudgetMin float64       `json:"time_budget_min"`
	Probabilities Probabilities `json:"probabilities"`
}

// ModeDisplay is how a mode's line is shown.
type ModeDisplay int

const (
	// DisplayUnavailable shows "N/A": result absent or unsuccessful.
	DisplayUnavailable ModeDisplay = iota
	// DisplayNotOperating shows "0%" with a not-operating note.
	DisplayNotOperating
	// DisplayProbability shows the rounded percentage.
	DisplayProbability
)

// ModeStatus is the derived display state of one mode.
type ModeStatus struct {
	Mode    Mode
	Display ModeDisplay

	// Percent is the probability rounded to the nearest percent.
	// Only meaningful for DisplayProbability with HasPercent set.
	Percent    int
	HasPercent bool

	// MeanMin is the mean duration, when present and displayable.
	MeanMin *float64
}

// ModeStatusOf derives the display state of one mode result.
func ModeStatusOf(mode Mode, r *ProbabilityResult) ModeStatus {
	switch {
	case r == nil || !r.OK:
		return ModeStatus{Mode: mode, Display: DisplayUnavailable}
	case r.NotOperating():
		return ModeStatus{Mode: mode, Display: DisplayNotOperating}
	}
	st := ModeStatus{Mode: mode, Display: DisplayProbability, MeanMin: r.MeanMin}
	if r.POnTime != nil {
		st.Percent = int(math.Round(*r.POnTime * 100))
		st.HasPercent = true
	}
	return st
}

// AmbientStatus is the page-wide on-time signal.
type AmbientStatus string

// Ambient classifications. Exactly one is active at a time.
const (
	AmbientUnset    AmbientStatus = ""
	AmbientGood     AmbientStatus = "good"
	AmbientWarning  AmbientStatus = "warning"
	AmbientCritical AmbientStatus = "critical"
)

// Classification thresholds on the best eligible probability.
const (
	GoodThreshold    = 0.90
	WarningThreshold = 0.70
)

// String returns the string representation.
func (a AmbientStatus) String() string {
	if a == AmbientUnset {
		return "unset"
	}
	return string(a)
}

// ClassifyProbability maps a best on-time probability to a status.
func ClassifyProbability(maxP float64) AmbientStatus {
	switch {
	case maxP >= GoodThreshold:
		return AmbientGood
	case maxP >= WarningThreshold:
		return AmbientWarning
	default:
		return AmbientCritical
	}
}

// ClassifyAmbient classifies the maximum eligible probability.
// It returns AmbientUnset when no mode is eligible.
func ClassifyAmbient(probs Probabilities) AmbientStatus {
	found := false
	maxP := 0.0
	for _, r := range probs {
		if !r.Eligible() {
			continue
		}
		if !found || *r.POnTime > maxP {
			maxP = *r.POnTime
			found = true
		}
	}
	if !found {
		return AmbientUnset
	}
	return ClassifyProbability(maxP)
}
