package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// pick returns the n-th (1-based) element of items.
func pick[T any](items []T, n int) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoResults
	}
	if n < 1 || n > len(items) {
		return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, n, len(items))
	}
	return items[n-1], nil
}

// printItems lists dropdown items as "[N] Title - Subtitle".
func printItems(cmd *cobra.Command, items []domain.DropdownItem, l *domain.Labels) {
	if len(items) == 0 {
		cmd.Println(l.NoResults)
		return
	}
	cmd.Printf(l.ResultCountFormat+"\n", len(items))
	for i, it := range items {
		if it.Subtitle != "" {
			cmd.Printf("  [%d] %s - %s\n", i+1, it.Title, it.Subtitle)
			continue
		}
		cmd.Printf("  [%d] %s\n", i+1, it.Title)
	}
}

func printTaxi(cmd *cobra.Command, p domain.TaxiPanel) {
	cmd.Println(p.Destination)
	if p.Distance != "" {
		cmd.Printf("  %s  %s  (%s)\n", p.Duration, p.Fare, p.Distance)
		return
	}
	cmd.Printf("  %s  %s\n", p.Duration, p.Fare)
}

func printBus(cmd *cobra.Command, p domain.BusPanel) {
	cmd.Printf("%s  %s\n", p.StopName, p.ETA)
	if p.Empty != "" {
		cmd.Printf("  %s\n", p.Empty)
		return
	}
	for _, r := range p.Rows {
		if r.Direction != "" {
			cmd.Printf("  %-6s %s  %s\n", r.Route, r.ETA, r.Direction)
			continue
		}
		cmd.Printf("  %-6s %s\n", r.Route, r.ETA)
	}
}

func printSubway(cmd *cobra.Command, p domain.SubwayPanel, l *domain.Labels) {
	cmd.Printf("%s  %s  %s\n", p.Station, p.DayType, p.NextTrain)
	for _, dir := range []struct {
		title string
		panel domain.SubwayDirectionPanel
	}{{l.UpLabel, p.Up}, {l.DownLabel, p.Down}} {
		cmd.Printf("[%s]\n", dir.title)
		if dir.panel.Empty != "" {
			cmd.Printf("  %s\n", dir.panel.Empty)
			continue
		}
		for _, r := range dir.panel.Rows {
			cmd.Printf("  %s %s %s\n", r.Time, r.Destination, r.ETA)
		}
	}
}

func printCommute(cmd *cobra.Command, r *domain.CommuteReport) {
	cmd.Println(r.Summary)
	for _, line := range r.Lines {
		text := fmt.Sprintf("  %s: %s", line.Label, line.Percent)
		if line.Mean != "" {
			text += " " + line.Mean
		}
		if line.Note != "" {
			text += " " + line.Note
		}
		cmd.Println(text)
	}
	cmd.Printf("  ambient: %s\n", r.Ambient)
}
