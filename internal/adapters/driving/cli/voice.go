package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var voicePick int

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Say a destination and list the matching places",
	Long: `Records one utterance through the backend speech service and lists the
places it matched. Use --pick N to show the taxi estimate for the N-th place.

The engine and timeout come from [voice] in the config file.`,
	Args: cobra.NoArgs,
	RunE: runVoice,
}

func init() {
	voiceCmd.Flags().IntVar(&voicePick, "pick", 0, "show the taxi estimate of the N-th place (1-based)")
	rootCmd.AddCommand(voiceCmd)
}

func runVoice(cmd *cobra.Command, _ []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	taxi := env.dashboard.Taxi()

	cmd.Println(env.dashboard.Labels().VoicePrompt)
	if err := env.dashboard.Voice().Capture(ctx); err != nil {
		return fmt.Errorf("voice capture failed: %w: %s", err, taxi.View().Status)
	}

	view := taxi.View()
	cmd.Println(view.Status)

	if voicePick <= 0 {
		printItems(cmd, view.Items, env.dashboard.Labels())
		return nil
	}

	if _, err := pick(view.Items, voicePick); err != nil {
		return err
	}
	if _, err := taxi.Select(ctx, view.Generation, voicePick-1); err != nil {
		return fmt.Errorf("taxi estimate failed: %w", err)
	}
	panel, ok := taxi.Panel()
	if !ok {
		return ErrNoResults
	}
	printTaxi(cmd, panel)
	return nil
}
