package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	startFEN     = flag.String("fen", "", "Start from this FEN position instead of the standard one")
	verbosity    = flag.Int("v", 1, "Verbosity: 0=quiet, 1=results, 2=every move")
	logFile      = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	window       = flag.Int("window", config.DefaultNoProgressWindow, "No-progress draw window in plies (0 disables)")
	repetition   = flag.Int("repetition-lag", config.DefaultRepetitionLag, "Short repetition lag in plies (0 disables)")
	insufficient = flag.Bool("insufficient", false, "Declare a draw on insufficient mating material")
	plain        = flag.Bool("plain", false, "Print the board without coordinates")
	help         = flag.Bool("h", false, "Show help")
	version      = flag.Bool("version", false, "Show version")
)

// usage prints the command line help.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-match [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a local two-player game. Enter moves as SAN (Nf3, exd5, O-O)\n")
	fmt.Fprintf(os.Stderr, "or squares (e2e4, e7e8q). Commands: %s.\n\n", commandList)
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// buildConfig maps the parsed flags onto a Config.
func buildConfig() *config.Config {
	return config.NewConfigBuilder().
		WithStartFEN(*startFEN).
		WithVerbosity(*verbosity).
		WithNoProgressWindow(*window).
		WithShortRepetition(*repetition > 0, *repetition).
		WithInsufficientMaterial(*insufficient).
		WithCoordinates(!*plain).
		Build()
}

// setupLogFile redirects diagnostics to the -l file if one was given.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, err
	}
	cfg.LogFile = file
	return file, nil
}
