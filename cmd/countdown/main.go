package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/headless"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout *os.File) error {
	// 1. Options
	opts, err := config.Parse(config.AppName, args)
	if err != nil {
		return err
	}

	// 2. Logging. The interactive UI owns the terminal, so logs go to a file.
	logFile, err := util.OpenLogFile(config.AppName, config.LogFileName, opts.LogFile)
	var logOut io.Writer = io.Discard
	if err == nil {
		defer logFile.Close()
		logOut = logFile
	}
	log := util.NewLogger(config.AppName, logOut, opts.Level())
	util.LogError(log, "open log file", err)

	interactive := term.IsTerminal(int(stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Headless countdown when asked or when there is no terminal.
	if opts.Headless || !interactive {
		if opts.Seconds == 0 {
			return fmt.Errorf("%w: no terminal, pass -seconds", config.ErrInvalidOptions)
		}
		log.WithField("seconds", opts.Seconds).Info("headless countdown")
		return headless.NewRunner(stdout, log).InPlace(interactive).Run(ctx, opts.Seconds)
	}

	return runInteractive(ctx, opts, log)
}

func runInteractive(ctx context.Context, opts config.Options, log logrus.FieldLogger) error {
	model := tui.NewModel(opts, log)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return programError(err)
}

// programError maps a program stopped through its context to context.Canceled.
// Anything else, a recovered panic included, is returned as is.
func programError(err error) error {
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	return err
}
