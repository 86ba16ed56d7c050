// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

// Command srsched is a small CLI driver over the scheduler package,
// for manual testing and for scripting a collection from a shell
// (spec.md §6). It is not the only consumer of the scheduler API; a
// real frontend is expected to import the package directly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
