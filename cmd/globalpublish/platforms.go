package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srijanshukla18/global-publish/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms and their constraints",
	RunE:  runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	for _, r := range platform.All() {
		fmt.Printf("%s (%s)\n", r.ID, r.DisplayName)

		var traits []string
		if r.TitleRequired {
			traits = append(traits, "title required")
		}
		if r.Threaded {
			traits = append(traits, "threaded")
		}
		if r.CommunityLookup {
			traits = append(traits, fmt.Sprintf("suggests up to %d communities", r.MaxCommunities))
		}
		if len(traits) > 0 {
			fmt.Printf("  %s\n", strings.Join(traits, ", "))
		}

		fields := make([]string, 0, len(r.LengthConstraints))
		for f := range r.LengthConstraints {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			lr := r.LengthConstraints[f]
			kind := "soft"
			if lr.Hard {
				kind = "hard"
			}
			switch {
			case lr.Min > 0 && lr.Max > 0:
				fmt.Printf("  %s: %d-%d (%s)\n", f, lr.Min, lr.Max, kind)
			case lr.Max > 0:
				fmt.Printf("  %s: up to %d (%s)\n", f, lr.Max, kind)
			case lr.Min > 0:
				fmt.Printf("  %s: at least %d (%s)\n", f, lr.Min, kind)
			}
		}
		fmt.Println()
	}
	return nil
}
