package domain

// TaxiPanel is the rendered taxi card.
type TaxiPanel struct {
	Destination string
	Duration    string
	Fare        string

	// Distance is empty when no estimate is available.
	Distance string
}

// BusRow is one rendered arrival.
type BusRow struct {
	Route string

	// Direction is empty when the terminus is unknown.
	Direction string
	ETA       string
}

// BusPanel is the rendered bus card.
type BusPanel struct {
	StopName string
	ETA      string
	Rows     []BusRow

	// Empty is set instead of Rows when no bus is expected.
	Empty string
}

// SubwayRow is one rendered departure.
type SubwayRow struct {
	Time        string
	Destination string
	ETA         string
}

// SubwayDirectionPanel is one rendered directional list.
type SubwayDirectionPanel struct {
	Rows []SubwayRow

	// Empty is set instead of Rows when service has ended.
	Empty string
}

// SubwayPanel is the rendered subway card.
type SubwayPanel struct {
	Station   string
	DayType   string
	Up        SubwayDirectionPanel
	Down      SubwayDirectionPanel
	NextTrain string
}

// ModeLine is one rendered mode of the probability card.
type ModeLine struct {
	Mode    Mode
	Label   string
	Percent string
	Mean    string
	Note    string
}

// CommuteReport is the rendered probability card.
type CommuteReport struct {
	Summary string
	Lines   []ModeLine
	Ambient AmbientStatus
}
