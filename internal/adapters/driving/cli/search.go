package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/services"
)

var (
	searchJSON bool
	searchPick int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Look up places, bus stops and subway stations",
	Long: `Runs one search against the backend and prints the candidates.

Use --pick N to show the panel of the N-th candidate instead:
  place   - taxi duration, fare and distance
  bus     - upcoming arrivals at the stop
  subway  - next departures in both directions`,
}

var searchPlaceCmd = &cobra.Command{
	Use:   "place [query]",
	Short: "Search destinations and estimate a taxi ride",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchPlace,
}

var searchBusCmd = &cobra.Command{
	Use:   "bus [query]",
	Short: "Search bus stops and show arrivals",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchBus,
}

var searchSubwayCmd = &cobra.Command{
	Use:   "subway [query]",
	Short: "Search subway stations and show departures",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchSubway,
}

func init() {
	for _, c := range []*cobra.Command{searchPlaceCmd, searchBusCmd, searchSubwayCmd} {
		c.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
		c.Flags().IntVar(&searchPick, "pick", 0, "show the panel of the N-th result (1-based)")
		searchCmd.AddCommand(c)
	}
	rootCmd.AddCommand(searchCmd)
}

func runSearchPlace(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	lookup := env.dashboard.Lookup()

	places, err := lookup.Places(ctx, args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchPick > 0 {
		place, err := pick(places, searchPick)
		if err != nil {
			return err
		}
		panel, err := lookup.Taxi(ctx, place)
		if err != nil {
			return fmt.Errorf("taxi estimate failed: %w", err)
		}
		if searchJSON {
			return outputJSON(cmd, panel)
		}
		printTaxi(cmd, panel)
		return nil
	}

	if searchJSON {
		return outputJSON(cmd, places)
	}
	items := make([]domain.DropdownItem, len(places))
	for i, p := range places {
		items[i] = domain.DropdownItem{Title: p.Name, Subtitle: p.Address}
	}
	printItems(cmd, items, env.dashboard.Labels())
	return nil
}

func runSearchBus(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	lookup := env.dashboard.Lookup()
	labels := env.dashboard.Labels()

	stops, err := lookup.BusStops(ctx, args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchPick > 0 {
		stop, err := pick(stops, searchPick)
		if err != nil {
			return err
		}
		panel, err := lookup.BusArrivals(ctx, stop)
		if err != nil {
			return fmt.Errorf("bus arrivals failed: %w", err)
		}
		if searchJSON {
			return outputJSON(cmd, panel)
		}
		printBus(cmd, panel)
		return nil
	}

	if searchJSON {
		return outputJSON(cmd, stops)
	}
	items := make([]domain.DropdownItem, len(stops))
	for i, s := range stops {
		items[i] = domain.DropdownItem{Title: s.NodeName}
		if items[i].Title == "" {
			items[i].Title = labels.UnnamedStop
		}
		if s.NodeNo != "" {
			items[i].Subtitle = "#" + s.NodeNo.String()
		}
	}
	printItems(cmd, items, labels)
	return nil
}

func runSearchSubway(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	lookup := env.dashboard.Lookup()
	labels := env.dashboard.Labels()

	stations, err := lookup.SubwayStations(ctx, args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchPick > 0 {
		station, err := pick(stations, searchPick)
		if err != nil {
			return err
		}
		panel, err := lookup.SubwaySchedule(ctx, station)
		if err != nil {
			return fmt.Errorf("subway schedule failed: %w", err)
		}
		if searchJSON {
			return outputJSON(cmd, panel)
		}
		printSubway(cmd, panel, labels)
		return nil
	}

	if searchJSON {
		return outputJSON(cmd, stations)
	}
	items := make([]domain.DropdownItem, len(stations))
	for i, st := range stations {
		items[i] = domain.DropdownItem{Title: services.StationTitle(st)}
	}
	printItems(cmd, items, labels)
	return nil
}
