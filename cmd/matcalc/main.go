// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/matcalc/cmd/matcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
