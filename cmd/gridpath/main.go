// Command gridpath runs an A* search on a grid described by flags or
// GRIDPATH_* environment variables and prints the resulting path.
//
// Usage:
//
//	gridpath --rows 20 --cols 20 --start 0,0 --end 19,19 -b 3,4 -b 3,5
//	GRIDPATH_BARRIERS="1,0 1,1" gridpath --rows 3 --cols 3 --start 0,0 --end 2,0
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
