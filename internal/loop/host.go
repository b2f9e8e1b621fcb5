package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
)

// ErrClosed is returned by Send once the host has stopped.
var ErrClosed = errors.New("loop: host closed")

// Default intervals. The fly-trap cadence assumes 10ms pulses.
const (
	DefaultTick     = 10 * time.Millisecond
	DefaultPlatform = 10 * time.Millisecond
)

// Options configures a Host.
type Options struct {
	Tick     time.Duration // clock pulse interval
	Platform time.Duration // platform and car movement interval
	Buffer   int           // size of the merged event channel

	// Publish is called from the consumer goroutine after every event.
	Publish func(core.State)
	Logger  *log.Logger
}

// Host runs the reducer against real clocks. Three producers (clock,
// platform mover, commands) feed one channel and a single consumer folds it,
// so the reducer never runs concurrently with itself.
type Host struct {
	opts     Options
	state    core.State
	commands chan core.Event
	done     chan struct{}
	stopOnce sync.Once
	paused   atomic.Bool
	logger   *log.Logger
}

// NewHost creates a host starting from initial.
func NewHost(initial core.State, opts Options) *Host {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Platform <= 0 {
		opts.Platform = DefaultPlatform
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 64
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		opts:     opts,
		state:    initial,
		commands: make(chan core.Event),
		done:     make(chan struct{}),
		logger:   logger.WithPrefix("loop"),
	}
}

// Send delivers a player command. It blocks until the host accepts it, ctx
// ends, or the host stops.
func (h *Host) Send(ctx context.Context, e core.Event) error {
	select {
	case <-h.done:
		return ErrClosed
	default:
	}
	select {
	case h.commands <- e:
		return nil
	case <-h.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pause stops both clocks. Commands are still accepted.
func (h *Host) Pause() { h.paused.Store(true) }

// Resume restarts the clocks.
func (h *Host) Resume() { h.paused.Store(false) }

// Paused reports whether the clocks are stopped.
func (h *Host) Paused() bool { return h.paused.Load() }

// Run drives the game until ctx is cancelled and returns the last state.
// A host can only be run once.
func (h *Host) Run(ctx context.Context) (core.State, error) {
	defer h.stopOnce.Do(func() { close(h.done) })

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan core.Event, h.opts.Buffer)

	emit := func(e core.Event) bool {
		select {
		case events <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}

	g.Go(func() error {
		t := time.NewTicker(h.opts.Tick)
		defer t.Stop()
		elapsed := 0
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				if h.Paused() {
					continue
				}
				if !emit(core.Tick{Elapsed: elapsed}) {
					return nil
				}
				elapsed++
			}
		}
	})

	g.Go(func() error {
		t := time.NewTicker(h.opts.Platform)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				if h.Paused() {
					continue
				}
				if !emit(core.PlatformTick{}) || !emit(core.CarTick{}) {
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e := <-h.commands:
				if !emit(e) {
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e := <-events:
				h.apply(e)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return h.state, err
	}
	return h.state, nil
}

// apply runs on the consumer goroutine only.
func (h *Host) apply(e core.Event) {
	prev := h.state
	next := core.Reduce(prev, e)
	h.state = next

	switch {
	case next.Level > prev.Level:
		h.logger.Debug("level cleared", "level", next.Level, "score", next.Score)
	case !prev.GameOver && next.GameOver:
		h.logger.Debug("game over", "score", next.Score, "level", next.Level, "event", e)
	case prev.GameOver && !next.GameOver:
		h.logger.Debug("restart", "highest", next.HighestScore)
	}

	if h.opts.Publish != nil {
		h.opts.Publish(next)
	}
}
