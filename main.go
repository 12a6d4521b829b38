package main

import (
	"context"
	"fmt"
	"os"

	"calculator/app"
)

// main is the entry point for the calculator. It builds the CLI around the
// application and runs it.
func main() {
	application := app.New()

	cmd := BuildCLI(application)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
