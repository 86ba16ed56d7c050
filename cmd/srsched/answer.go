// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardcache/srsched/card"
)

var answerCmd = &cobra.Command{
	Use:   "answer <card-id> <ease 1-4>",
	Short: "Grade a card and persist the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid card id %q: %w", args[0], err)
		}
		ease, err := strconv.Atoi(args[1])
		if err != nil || ease < 1 || ease > 4 {
			return fmt.Errorf("ease must be an integer 1-4, got %q", args[1])
		}

		ctx := cmd.Context()
		c, err := st.GetCard(ctx, card.ID(id))
		if err != nil {
			return err
		}

		if err := sched.AnswerCard(ctx, c, card.Ease(ease)); err != nil {
			return err
		}
		fmt.Printf("card %d answered, new due=%d interval=%.2fd\n", c.ID, c.Due, c.Interval)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(answerCmd)
}
