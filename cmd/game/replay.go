package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/portalknight/internal/application/replay"
	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/application/state"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded attempt without a window",
	Long: `Replay feeds the inputs recorded with --record into a fresh session of
the same level and prints the result. Sessions are deterministic, so the
result matches the recorded attempt as long as the level is unchanged.

Examples:
  portalknight --record run.json
  portalknight replay run.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// replayResult is the outcome of a headless replay
type replayResult struct {
	Outcome state.Outcome
	Result  session.Result
	Frames  int
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	res, err := replayHeadless(rt, *data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:    %s\n", data.Level)
	fmt.Fprintf(out, "outcome:  %s\n", res.Outcome)
	fmt.Fprintf(out, "coins:    %d/%d\n", res.Result.CoinsCaptured, res.Result.CoinsNumber)
	fmt.Fprintf(out, "ticks:    %d of %d recorded\n", res.Result.Ticks, res.Frames)
	return nil
}

// replayHeadless runs the recorded inputs against the level they were recorded on
func replayHeadless(rt *runtime, data replay.ReplayData) (replayResult, error) {
	grid, err := rt.loader.LoadLevel(data.Level)
	if err != nil {
		return replayResult{}, err
	}

	s := session.New(rt.session, grid, rt.sprites, session.Deps{
		SoundEnabled: data.Sound,
		Logger:       log.Default().With("replay", data.Level),
	})

	r := replay.NewReplayer(data)
	outcome := replay.Run(s, r)
	log.Debug("replay finished", "outcome", outcome, "frames", r.CurrentFrame())

	return replayResult{Outcome: outcome, Result: s.Result(), Frames: r.TotalFrames()}, nil
}
