// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package main

import (
	"github.com/spf13/cobra"

	"github.com/cardcache/srsched/config"
	"github.com/cardcache/srsched/scheduler"
	"github.com/cardcache/srsched/store"
)

var (
	collectionPath string
	configPath     string

	st    *store.SQLiteStore
	sched *scheduler.Scheduler
)

var rootCmd = &cobra.Command{
	Use:           "srsched",
	Short:         "srsched drives a spaced-repetition scheduler collection from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		st, err = store.Open(collectionPath)
		if err != nil {
			return err
		}

		params, err := config.Load(configPath)
		if err != nil {
			st.Close()
			return err
		}

		sched = scheduler.New(st, *params)
		return sched.Reset(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st == nil {
			return nil
		}
		return st.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&collectionPath, "collection", "c", "collection.db", "path to the SQLite collection file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "deck.toml", "path to the Deck Parameters TOML file")
}
