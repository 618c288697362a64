package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// RenderTaxi builds the taxi card for a selected place.
func RenderTaxi(l *domain.Labels, place domain.Place, taxi *domain.TaxiInfo) domain.TaxiPanel {
	panel := domain.TaxiPanel{Destination: place.Name}
	if !taxi.Available() {
		panel.Duration = l.Placeholder
		panel.Fare = l.NoTaxiInfo
		return panel
	}
	p := printerFor(l)
	panel.Duration = fmt.Sprintf(l.MinutesFormat, taxi.DurationMin)
	panel.Fare = fmt.Sprintf(l.FareFormat, p.Sprintf("%d", taxi.TaxiFare))
	panel.Distance = fmt.Sprintf(l.DistanceFormat, float64(taxi.DistanceMeter)/1000)
	return panel
}

// RenderBus builds the bus card for a selected stop.
func RenderBus(l *domain.Labels, stop domain.BusStop, arr *domain.BusArrivals) domain.BusPanel {
	name := stop.NodeName
	if name == "" {
		name = l.DefaultStopName
	}
	if stop.NodeNo != "" {
		name += " (#" + stop.NodeNo.String() + ")"
	}

	panel := domain.BusPanel{StopName: name, ETA: l.Placeholder}
	if arr == nil {
		panel.Empty = l.NoUpcomingBus
		return panel
	}
	panel.ETA = minutesOr(l, arr.ETAMin)
	if len(arr.Arrivals) == 0 {
		panel.Empty = l.NoUpcomingBus
		return panel
	}
	panel.Rows = make([]domain.BusRow, 0, len(arr.Arrivals))
	for _, a := range arr.Arrivals {
		route := a.RouteNo.String()
		if route == "" {
			route = l.Placeholder
		}
		panel.Rows = append(panel.Rows, domain.BusRow{
			Route:     route,
			Direction: a.EndNodeName,
			ETA:       minutesOr(l, a.ArrTimeMin),
		})
	}
	return panel
}

// RenderSubway builds the subway card for a station and its schedule.
func RenderSubway(l *domain.Labels, st domain.SubwayStation, sched *domain.SubwaySchedule) domain.SubwayPanel {
	panel := domain.SubwayPanel{
		Station:   StationTitle(st),
		NextTrain: l.Placeholder,
	}
	if sched == nil {
		sched = &domain.SubwaySchedule{}
	}
	panel.DayType = l.DayTypeLabel(sched.DayType)
	panel.Up = renderDirection(l, sched.Schedule.Up)
	panel.Down = renderDirection(l, sched.Schedule.Down)
	if eta, ok := sched.NextETA(); ok {
		panel.NextTrain = fmt.Sprintf(l.MinutesFormat, eta)
	}
	return panel
}

func renderDirection(l *domain.Labels, deps []domain.SubwayDeparture) domain.SubwayDirectionPanel {
	if len(deps) == 0 {
		return domain.SubwayDirectionPanel{Empty: l.ServiceEnded}
	}
	rows := make([]domain.SubwayRow, len(deps))
	for i, d := range deps {
		rows[i] = domain.SubwayRow{
			Time:        FormatDepTime(d.DepTime),
			Destination: d.EndStationName,
			ETA:         fmt.Sprintf(l.ETAAfterFormat, d.ETAMin),
		}
	}
	return domain.SubwayDirectionPanel{Rows: rows}
}

// StationTitle renders "name (route)".
func StationTitle(st domain.SubwayStation) string {
	if st.RouteName == "" {
		return st.Name
	}
	return st.Name + " (" + st.RouteName + ")"
}

// FormatDepTime turns "HHMM" (optionally followed by seconds) into "HH:MM".
// Shorter strings are returned unchanged.
func FormatDepTime(dep string) string {
	if len(dep) < 4 {
		return dep
	}
	return dep[:2] + ":" + dep[2:4]
}

// RenderCommute builds the probability card from a backend reply.
func RenderCommute(l *domain.Labels, resp *domain.CommuteResponse) domain.CommuteReport {
	report := domain.CommuteReport{
		Summary: fmt.Sprintf(l.SummaryFormat, resp.Now, resp.ArriveHHMM, formatNumber(resp.TimeBudgetMin)),
		Lines:   make([]domain.ModeLine, 0, 3),
		Ambient: domain.ClassifyAmbient(resp.Probabilities),
	}
	for _, mode := range domain.AllModes() {
		report.Lines = append(report.Lines, renderMode(l, domain.ModeStatusOf(mode, resp.Probabilities[mode])))
	}
	return report
}

func renderMode(l *domain.Labels, st domain.ModeStatus) domain.ModeLine {
	line := domain.ModeLine{Mode: st.Mode, Label: l.ModeLabel(st.Mode)}
	switch st.Display {
	case domain.DisplayUnavailable:
		line.Percent = l.NotAvailable
	case domain.DisplayNotOperating:
		line.Percent = "0%"
		line.Note = l.NotOperating
	default:
		line.Percent = l.Placeholder
		if st.HasPercent {
			line.Percent = strconv.Itoa(st.Percent) + "%"
		}
		if st.MeanMin != nil {
			line.Mean = fmt.Sprintf(l.MeanFormat, formatNumber(*st.MeanMin))
		}
	}
	return line
}

func minutesOr(l *domain.Labels, m *int) string {
	if m == nil {
		return l.Placeholder
	}
	return fmt.Sprintf(l.MinutesFormat, *m)
}

// formatNumber prints v with the fewest digits that round-trip.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
