package commands

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/snekimus/snek/config"
	"github.com/snekimus/snek/rules"
	"github.com/snekimus/snek/worker"
	"github.com/spf13/cobra"
)

var (
	moves    string
	maxTurns int64
)

func init() {
	simCmd.Flags().StringVarP(&moves, "moves", "m", "", "one move per turn: u, d, l, r, or . for no input")
	simCmd.Flags().Int64Var(&maxTurns, "max-turns", worker.DefaultMaxTurns, "stop after this many turns")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs a scripted game without a screen and dumps the final state",
	RunE: func(*cobra.Command, []string) error {
		prometheus()
		snap, err := simulate(context.Background())
		if err != nil {
			return err
		}
		spew.Dump(snap)
		return nil
	},
}

func simulate(ctx context.Context) (rules.Snapshot, error) {
	script, err := worker.ParseScript(moves)
	if err != nil {
		return rules.Snapshot{}, errors.Wrap(err, "invalid moves")
	}
	clock := worker.NewStepClock(time.Now())
	game := rules.NewGame(config.Settings(), clock, newRand())
	return worker.Runner(ctx, game, clock, script, maxTurns)
}
