package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hlop3z/timein/internal/cli"
)

// clearScreen resets the terminal between live frames using ANSI escapes.
func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// runLive re-renders frame on every minute change until SIGINT/SIGTERM
// (clean exit, code 0). Writes to the config file trigger reload; a failed
// reload keeps the previous settings and prints a warning.
func runLive(cmd *cobra.Command, frame func() error, reload func() error) error {
	out := cmd.OutOrStdout()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	// Watch the config directory so default-zone edits land on the next
	// frame. A nil events channel (no config path, watch failure) simply
	// never fires.
	var events chan fsnotify.Event
	watched := configPath()
	if watched != "" {
		if watcher, err := fsnotify.NewWatcher(); err == nil {
			if err := watcher.Add(filepath.Dir(watched)); err == nil {
				defer watcher.Close()
				events = watcher.Events
			} else {
				watcher.Close()
			}
		}
	}

	redraw := func() error {
		clearScreen(out)
		if err := frame(); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.Dim("live, press Ctrl+C to exit"))
		return nil
	}

	if err := redraw(); err != nil {
		return err
	}

	last := time.Now().Truncate(time.Minute)
	for {
		select {
		case <-sigc:
			fmt.Fprintln(out)
			return nil

		case ev := <-events:
			if filepath.Base(ev.Name) != filepath.Base(watched) {
				continue
			}
			if err := reload(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("config reload failed: "+err.Error()))
				continue
			}
			if err := redraw(); err != nil {
				return err
			}

		case now := <-ticker.C:
			minute := now.Truncate(time.Minute)
			if minute.Equal(last) {
				continue
			}
			last = minute
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}
