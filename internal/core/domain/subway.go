package domain

// SubwayStation is a station candidate from a station search.
type SubwayStation struct {
	ID        string `json:"subwayStationId"`
	Name      string `json:"subwayStationName"`
	RouteName string `json:"subwayRouteName"`
}

// DayType is the two-digit schedule day code.
type DayType string

// Schedule day codes.
const (
	DayWeekday  DayType = "01"
	DaySaturday DayType = "02"
	DayHoliday  DayType = "03"
)

// SubwayDeparture is one scheduled train in one direction.
type SubwayDeparture struct {
	// DepTime is HHMM with no separator, optionally followed by seconds.
	DepTime string `json:"depTime"`

	// EndStationName is the train's terminus.
	EndStationName string `json:"endSubwayStationNm"`

	// ETAMin is the precomputed minutes until departure.
	ETAMin int `json:"eta_min"`
}

// SubwayDirections holds the up (U) and down (D) departure lists.
type SubwayDirections struct {
	Up   []SubwayDeparture `json:"U"`
	Down []SubwayDeparture `json:"D"`
}

// SubwaySchedule is the schedule lookup reply for one station.
type SubwaySchedule struct {
	DayType  DayType          `json:"dayType"`
	Schedule SubwayDirections `json:"schedule"`
}

// NextETA returns the minimum ETA across both directions.
// ok is false when both lists are empty.
func (s SubwaySchedule) NextETA() (minutes int, ok bool) {
	for _, list := range [][]SubwayDeparture{s.Schedule.Up, s.Schedule.Down} {
		for _, d := range list {
			if !ok || d.ETAMin < minutes {
				minutes = d.ETAMin
				ok = true
			}
		}
	}
	return minutes, ok
}

// DefaultStation is the startup reply carrying the configured station.
type DefaultStation struct {
	Station  *SubwayStation
	Schedule SubwaySchedule
}
