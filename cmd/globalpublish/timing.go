package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srijanshukla18/global-publish/internal/platform"
	"github.com/srijanshukla18/global-publish/internal/timing"
)

var timingPlatform string

var timingCmd = &cobra.Command{
	Use:   "timing",
	Short: "Show posting-time advice per platform",
	Long:  `Report whether now is a good posting window for each platform, and when the next one opens. All times are UTC.`,
	RunE:  runTiming,
}

func init() {
	timingCmd.Flags().StringVar(&timingPlatform, "platform", "", "Limit to one platform")
	rootCmd.AddCommand(timingCmd)
}

func runTiming(cmd *cobra.Command, args []string) error {
	advisor := timing.NewAdvisor()

	var suggestions []timing.Suggestion
	if timingPlatform != "" {
		rules, ok := platform.Get(timingPlatform)
		if !ok {
			return fmt.Errorf("unknown platform %q (known: %v)", timingPlatform, platform.IDs())
		}
		suggestions = []timing.Suggestion{advisor.Suggest(rules)}
	} else {
		suggestions = advisor.SuggestAll()
	}

	for _, s := range suggestions {
		if s.CurrentIsGood {
			fmt.Printf("%-12s now is a %s window\n", s.Platform, s.CurrentLabel)
		} else if s.NextWindow != "" {
			fmt.Printf("%-12s next good window: %s\n", s.Platform, s.NextWindow)
		} else {
			fmt.Printf("%-12s no posting windows defined\n", s.Platform)
		}
	}

	return nil
}
