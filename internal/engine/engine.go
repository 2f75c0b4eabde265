// Package engine drives a football match without a terminal.
//
// A Runner owns one Match on a single goroutine. Two tickers feed it: the
// frame ticker runs motion, pursuit and resolution with the measured time
// since the previous frame, and the clock ticker counts the match down.
// Input and play selections arrive on channels and are applied between
// ticks, so the match is never touched concurrently.
package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/football"
	"github.com/vovakirdan/gridiron/internal/playbook"
)

// ErrStopped is returned when a command reaches a runner that has exited.
var ErrStopped = errors.New("engine: runner stopped")

// Options configures a Runner.
type Options struct {
	Settings      football.Settings
	FrameInterval time.Duration // Default 1/60 s
	ClockInterval time.Duration // Default 1 s
	Logger        *log.Logger   // Nil discards logs
	Sink          EventSink     // Optional
}

// DefaultOptions returns options for a standard match at 60 frames per second.
func DefaultOptions() Options {
	return Options{
		Settings:      football.DefaultSettings(),
		FrameInterval: time.Second / 60,
		ClockInterval: time.Second,
	}
}

type playRequest struct {
	id    playbook.ID
	reply chan error
}

// Runner runs one match to completion.
type Runner struct {
	id     MatchID
	opts   Options
	logger *log.Logger
	match  *football.Match

	inputMu sync.Mutex
	inputs  chan core.InputState
	plays   chan playRequest

	snapMu sync.RWMutex
	latest football.Snapshot

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  sync.Once
}

// New creates a runner. The match does not advance until Run is called.
func New(opts Options) *Runner {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Second
	}
	if opts.Sink == nil {
		opts.Sink = discardSink{}
	}

	id := MatchID(uuid.NewString())
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("match", id)

	m := football.NewMatch(opts.Settings)
	return &Runner{
		id:     id,
		opts:   opts,
		logger: logger,
		match:  m,
		inputs: make(chan core.InputState, 1),
		plays:  make(chan playRequest),
		latest: m.Snapshot(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// ID returns the match identifier.
func (r *Runner) ID() MatchID {
	return r.id
}

// SetInput replaces the held directions used from the next frame on.
// Never blocks; only the most recent state is kept.
func (r *Runner) SetInput(in core.InputState) {
	r.inputMu.Lock()
	defer r.inputMu.Unlock()

	select {
	case <-r.inputs:
	default:
	}
	select {
	case r.inputs <- in:
	default:
	}
}

// SelectPlay records a play selection on the match goroutine.
func (r *Runner) SelectPlay(ctx context.Context, id playbook.ID) error {
	req := playRequest{id: id, reply: make(chan error, 1)}

	select {
	case r.plays <- req:
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// The loop replies before it can exit.
	return <-req.reply
}

// Snapshot returns the state after the most recent frame or clock tick.
func (r *Runner) Snapshot() football.Snapshot {
	r.snapMu.RLock()
	defer r.snapMu.RUnlock()
	return r.latest
}

// Stop asks the loop to exit. Safe to call more than once and from any goroutine.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

// Done is closed once Run has returned.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Run drives the match until the clock expires, Stop is called or ctx is
// canceled. Both tickers are released before it returns. A runner can be
// run only once; later calls return ErrStopped.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	first := false
	r.started.Do(func() { first = true })
	if !first {
		return Result{}, ErrStopped
	}
	defer close(r.done)

	frames := time.NewTicker(r.opts.FrameInterval)
	defer frames.Stop()
	clock := time.NewTicker(r.opts.ClockInterval)
	defer clock.Stop()

	r.logger.Info("match started",
		"frame_interval", r.opts.FrameInterval,
		"clock_interval", r.opts.ClockInterval,
		"duration", r.opts.Settings.ClockDuration,
	)

	var input core.InputState
	last := time.Now()

	if r.match.GameOver() {
		return r.finish(EndCompleted), nil
	}

	for {
		select {
		case in := <-r.inputs:
			input = in

		case req := <-r.plays:
			err := r.match.SelectPlay(req.id)
			req.reply <- err
			if err == nil {
				r.logger.Debug("play selected", "play", req.id)
				r.publish(PlaySelectedEvent{MatchID: r.id, Play: req.id})
			}

		case now := <-frames.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.runFrame(input, dt)

		case <-clock.C:
			if r.runClock() {
				return r.finish(EndCompleted), nil
			}

		case <-r.stop:
			return r.finish(EndStopped), nil

		case <-ctx.Done():
			return r.finish(EndCanceled), ctx.Err()
		}
	}
}

func (r *Runner) runFrame(in core.InputState, dt float64) {
	res := r.match.Frame(in, dt)
	r.store(res.Snapshot)

	if res.Event == football.EventNone {
		return
	}
	r.logger.Info("score",
		"event", res.Event,
		"home", res.Snapshot.Score.Home,
		"away", res.Snapshot.Score.Away,
		"clock", res.Snapshot.ClockText,
	)
	r.publish(ScoreEvent{
		MatchID: r.id,
		Event:   res.Event,
		Score:   res.Snapshot.Score,
		Frame:   res.Snapshot.Frame,
	})
}

// runClock returns true once the match is over.
func (r *Runner) runClock() bool {
	ended := r.match.TickClock()
	snap := r.match.Snapshot()
	r.store(snap)
	r.publish(ClockEvent{MatchID: r.id, Remaining: snap.Clock.Remaining})
	return ended
}

func (r *Runner) finish(reason EndReason) Result {
	snap := r.match.Snapshot()
	r.store(snap)

	res := Result{
		MatchID: r.id,
		Reason:  reason,
		Score:   snap.Score,
		Frames:  snap.Frame,
		Play:    snap.SelectedPlay,
	}
	r.logger.Info("match ended",
		"reason", reason,
		"home", res.Score.Home,
		"away", res.Score.Away,
		"frames", res.Frames,
	)
	r.publish(MatchEndedEvent{Result: res})
	return res
}

func (r *Runner) store(s football.Snapshot) {
	r.snapMu.Lock()
	r.latest = s
	r.snapMu.Unlock()
}

func (r *Runner) publish(evt Event) {
	r.opts.Sink.Send(evt)
}
