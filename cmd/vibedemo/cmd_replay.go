package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"vibedemo/cmd/vibedemo/desktop"
	"vibedemo/internal/demo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	replayChoice   int
	replaySnapshot bool
	replayTimeout  time.Duration
)

// replayCmd runs the walkthrough headless
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Play the scripted walkthrough without the desktop",
	Long: `Runs the terminal script end to end on the real clock and prints each
transcript line as it appears: trigger, project type, experience choice,
provisioning and completion.

Example:
  vibedemo replay --choice 2 --snapshot`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := scriptFromConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), replayTimeout)
		defer cancel()

		out := cmd.OutOrStdout()
		snap, err := replay(ctx, out, script, replayChoice, nil)
		if err != nil {
			return err
		}
		if replaySnapshot {
			return writeSnapshot(out, snap)
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().IntVar(&replayChoice, "choice", 0, "Experience option to pick (0-based)")
	replayCmd.Flags().BoolVar(&replaySnapshot, "snapshot", false, "Print the final session snapshot as YAML")
	replayCmd.Flags().DurationVar(&replayTimeout, "timeout", time.Minute, "Give up if the script has not finished")
}

// replay drives a session through the whole script, streaming new
// transcript lines to w. Timers fire on the real clock and are run on
// this goroutine through a demo.Loop. A nil log uses the logging
// categories.
func replay(ctx context.Context, w io.Writer, script demo.Script, choice int, log *zap.Logger) (demo.Snapshot, error) {
	if choice < 0 || choice >= len(script.ExperienceTypes) {
		return demo.Snapshot{}, fmt.Errorf("choice %d out of range (0-%d)", choice, len(script.ExperienceTypes)-1)
	}

	loop := demo.NewLoop()
	defer loop.Close()

	s, err := demo.New(script,
		demo.WithDispatcher(loop.Dispatch),
		demo.WithLogger(log),
		demo.WithCopier(demo.CopierFunc(func(string) error { return nil })),
	)
	if err != nil {
		return demo.Snapshot{}, err
	}
	defer s.Close()

	printed := 0
	emit := func() {
		lines := s.Snapshot().Transcript
		for _, line := range lines[printed:] {
			fmt.Fprintln(w, line.Text)
		}
		printed = len(lines)
	}

	emit()
	fmt.Fprintf(w, "%s %s\n", desktop.ShellPrompt, script.Trigger)
	s.SubmitLine(script.Trigger)
	emit()

	if !s.Activate() {
		return s.Snapshot(), fmt.Errorf("project type rejected in phase %s", s.Phase())
	}
	emit()

	for i := 0; i < choice; i++ {
		s.MoveSelection(demo.Next)
	}
	if !s.Activate() {
		return s.Snapshot(), fmt.Errorf("experience %d rejected", choice)
	}
	emit()

	if err := loop.Wait(ctx, func() bool { return s.Phase() == demo.PhaseIdle }); err != nil {
		return s.Snapshot(), fmt.Errorf("waiting for provisioning: %w", err)
	}
	emit()

	if script.AutoAdvanceDelay > 0 {
		if err := loop.Wait(ctx, func() bool { return s.Snapshot().Windows.Editor }); err != nil {
			return s.Snapshot(), fmt.Errorf("waiting for editor: %w", err)
		}
		fmt.Fprintln(w, "[Cursor and browser opened]")
	}
	return s.Snapshot(), nil
}

func writeSnapshot(w io.Writer, snap demo.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}
