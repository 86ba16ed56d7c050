// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardcache/srsched/card"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Fetch the next due card, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := sched.GetCard(cmd.Context())
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Println("no cards due")
			return nil
		}
		fmt.Printf("card %d\tqueue=%s\tdue=%d\tinterval=%.2fd\tfactor=%.2f\treps=%d\n",
			c.ID, queueName(c.Queue), c.Due, c.Interval, c.Factor, c.Reps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func queueName(q card.Queue) string {
	switch q {
	case card.QueueSchedBuried:
		return "buried"
	case card.QueueSuspended:
		return "suspended"
	case card.QueueLearn:
		return "learn"
	case card.QueueReview:
		return "review"
	case card.QueueNew:
		return "new"
	default:
		return "unknown"
	}
}
