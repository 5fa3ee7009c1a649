package commands

import (
	"context"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/snekimus/snek/config"
	"github.com/snekimus/snek/rules"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snek in the terminal",
	RunE: func(*cobra.Command, []string) error {
		quietLogs()
		prometheus()
		return playGame(context.Background())
	},
}

func playGame(ctx context.Context) error {
	game := rules.NewGame(config.Settings(), rules.SystemClock{}, newRand())
	log.WithField("seed", seed).Info("starting terminal game")

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	limiter := config.FrameLimiter()

	for {
		if err := limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "frame limiter")
		}

		done, err := drainEvents(game, eventQueue)
		if err != nil || done {
			return err
		}

		game.Update()
		if err := render(game.Snapshot()); err != nil {
			return errors.Wrap(err, "render")
		}
	}
}

// drainEvents applies every key press queued since the last frame. Moves
// collapse to the latest one inside the game.
func drainEvents(game *rules.Game, eventQueue <-chan termbox.Event) (bool, error) {
	for {
		select {
		case ev := <-eventQueue:
			if ev.Type == termbox.EventError {
				return true, errors.Wrap(ev.Err, "terminal event")
			}
			if handleEvent(game, ev) {
				return true, nil
			}
		default:
			return false, nil
		}
	}
}

// handleEvent reports whether the player asked to leave.
func handleEvent(game *rules.Game, ev termbox.Event) bool {
	a, d := keyAction(ev)
	switch a {
	case actionMove:
		game.SetDirection(d)
	case actionRestart:
		game.Restart()
	case actionQuit:
		return game.State() == rules.RunStateGameOver
	case actionExit:
		return true
	}
	return false
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
