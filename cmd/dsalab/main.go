// SPDX-License-Identifier: MIT

// Command dsalab runs the data-structure and graph toolkit interactively or
// from a script.
//
//	dsalab shell              interactive prompt
//	dsalab run FILE           execute a script, stop at the first error
//	dsalab config init|show   write or print ~/.dsalab.yaml
//	dsalab version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "dsalab:", err)
		os.Exit(1)
	}
}
