package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KirkDiggler/scoretracker/internal/handlers/cli"
	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle"
	"github.com/KirkDiggler/scoretracker/internal/services/messaging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shared by the play loop and the file prompt
	stdin := bufio.NewReader(os.Stdin)

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	app, err := cli.New(&cli.Config{
		Bootstrap: cli.NewBootstrap(&cli.WiringConfig{
			Prompt: promptLine(stdin),
		}),
		Messages: messages,
		In:       stdin,
		Out:      os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create command line: %v", err)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}

// promptLine asks for a path on stdout and reads the answer from stdin
func promptLine(stdin *bufio.Reader) filehandle.PromptFunc {
	return func(ctx context.Context, message, suggested string) (string, error) {
		if suggested != "" {
			fmt.Printf("%s (e.g. %s, blank to skip): ", message, suggested)
		} else {
			fmt.Printf("%s (blank to skip): ", message)
		}

		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return "", nil
		}
		return strings.TrimSpace(line), nil
	}
}
