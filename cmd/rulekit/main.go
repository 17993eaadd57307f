// Command rulekit hosts the rulekit validation engine: an HTTP API that
// validates user payloads, and offline commands to check documents and inspect
// the message catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errInvalidDocument) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
