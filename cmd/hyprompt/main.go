// Command hyprompt turns text or an image into a video generation prompt.
//
// Usage:
//
//	hyprompt --text "A cat walks across a table" [--mode normal|master] [--model gpt-4]
//	hyprompt --image frame.png --format json --output out/prompt.json --save-components
//	hyprompt serve      - expose the pipeline as MCP tools on stdio
//	hyprompt catalog    - print the rendered template for a mode
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
