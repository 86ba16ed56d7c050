// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Print the learn/review/new queue counts for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		learn, review, newCards := sched.Counts()
		fmt.Printf("learn=%d review=%d new=%d (day %d)\n", learn, review, newCards, sched.DayCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countsCmd)
}
