// chessgym-server serves the chess gym engine over HTTP and websocket.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/gym-chess-go/internal/config"
	"github.com/lgbarn/gym-chess-go/internal/httpapi"
)

var (
	addr      = flag.String("addr", ":8080", "Listen address")
	depth     = flag.Int("depth", 3, "Default search depth for minimax requests without one")
	workers   = flag.Int("workers", 1, "Number of goroutines sharing the root moves")
	maxBody   = flag.Int64("maxbody", 1<<20, "Maximum request body size in bytes")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=access log, 2=per-move scores")
	logFile   = flag.String("log", "", "Write the access log and diagnostics to this file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfigBuilder().
		WithAddr(*addr).
		WithDepth(*depth).
		WithWorkers(*workers).
		WithVerbosity(*verbosity).
		Build()
	cfg.Server.MaxBodyBytes = *maxBody

	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", *logFile, err)
		}
		defer file.Close()
		cfg.LogFile = file
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return httpapi.NewServer(cfg).ListenAndServe()
}
