package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	urfavecli "github.com/urfave/cli/v2"
)

const prompt = "tracker> "

// play reads commands line by line and runs each against the open game
// until the input ends or the user quits
func (a *App) play(c *urfavecli.Context) error {
	ctx := c.Context

	if stop := a.serveMetrics(ctx); stop != nil {
		defer stop()
	}

	if err := a.show(c); err != nil {
		return err
	}
	fmt.Fprintln(a.out, `Type a command ("help" lists them, "quit" leaves).`)

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "play":
			fmt.Fprintln(a.out, "Already playing.")
			continue
		}

		args := append([]string{a.cli.Name}, fields...)
		if err := a.cli.RunContext(ctx, args); err != nil {
			a.printError(ctx, err)
		}
		a.settle(ctx)
		if err := ctx.Err(); err != nil {
			return nil
		}
	}
}

// serveMetrics exposes /metrics for the length of the session when configured
func (a *App) serveMetrics(ctx context.Context) func() {
	if a.svc.Gatherer == nil || a.svc.MetricsAddress == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.svc.Gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              a.svc.MetricsAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.ErrorContext(ctx, "Metrics server stopped", slog.Any("error", err))
		}
	}()
	a.logger.InfoContext(ctx, "Serving metrics", slog.String("address", a.svc.MetricsAddress))

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.WarnContext(ctx, "Failed to stop metrics server", slog.Any("error", err))
		}
	}
}
