// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:       "mode <standard|review-early|learn-more|cram>",
	Short:     "Switch the scheduler's queue-filling mode for this run and reset",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"standard", "review-early", "learn-more", "cram"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "standard":
			sched.SetupStandardScheduler()
		case "review-early":
			sched.SetupReviewEarlyScheduler()
		case "learn-more":
			sched.SetupLearnMoreScheduler()
		case "cram":
			sched.SetupCramScheduler()
		default:
			return fmt.Errorf("unknown mode %q", args[0])
		}
		return sched.Reset(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
}
