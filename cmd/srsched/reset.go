// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rebuild the queues for a fresh day cutoff",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sched.Reset(cmd.Context()); err != nil {
			return err
		}
		learn, review, newCards := sched.Counts()
		fmt.Printf("reset: learn=%d review=%d new=%d\n", learn, review, newCards)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
