package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

var (
	commuteArrive string
	commuteTo     string
	commutePick   int
	commuteJSON   bool
)

var commuteCmd = &cobra.Command{
	Use:   "commute",
	Short: "Estimate the chance of arriving on time",
	Long: `Looks up the destination, then asks the backend how likely each mode is to
arrive by the given time. The ambient status is derived from the best
operating mode:
  good      - at least 90%
  warning   - at least 70%
  critical  - below 70%

Example:
  smartmirror commute --arrive 09:00 --to 서면역`,
	Args: cobra.NoArgs,
	RunE: runCommute,
}

func init() {
	commuteCmd.Flags().StringVar(&commuteArrive, "arrive", "", "desired arrival time as HH:MM")
	commuteCmd.Flags().StringVar(&commuteTo, "to", "", "destination search text")
	commuteCmd.Flags().IntVar(&commutePick, "pick", 1, "use the N-th destination candidate (1-based)")
	commuteCmd.Flags().BoolVar(&commuteJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(commuteCmd)
}

func runCommute(cmd *cobra.Command, _ []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	lookup := env.dashboard.Lookup()
	labels := env.dashboard.Labels()

	if strings.TrimSpace(commuteArrive) == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingArrivalTime, labels.SelectArrivalTime)
	}
	if commuteTo == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingDestination, labels.SelectDestination)
	}
	places, err := lookup.Places(ctx, commuteTo)
	if err != nil {
		return fmt.Errorf("destination search failed: %w", err)
	}
	place, err := pick(places, commutePick)
	if err != nil {
		return err
	}

	report, err := lookup.Commute(ctx, commuteArrive, domain.Destination{
		Name: place.Name,
		Lat:  place.Lat,
		Lon:  place.Lon,
	})
	switch {
	case errors.Is(err, domain.ErrMissingArrivalTime):
		return fmt.Errorf("%w: %s", err, labels.SelectArrivalTime)
	case errors.Is(err, domain.ErrInvalidArrivalTime):
		return fmt.Errorf("%w: %s", err, labels.InvalidArrivalTime)
	case err != nil:
		return fmt.Errorf("probability request failed: %w", err)
	}

	if commuteJSON {
		return outputJSON(cmd, report)
	}
	printCommute(cmd, report)
	return nil
}
