package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asadas-tsadiglo/tank-telemetry/src/control"
	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

const (
	DefaultInterval = 30 * time.Second
	DefaultBackoff  = 5 * time.Second
)

// Store receives the readings produced on each tick.
type Store interface {
	CacheLatest(ctx context.Context, readings []model.Reading) error
	SaveReadings(readings []model.Reading) error
}

// Engine is the slice of the simulation engine the refresher drives.
type Engine interface {
	control.Overrider
	Step(id model.TankID, elapsedMinutes float64) (model.Reading, error)
}

// Refresher owns the simulation cadence: on every tick it applies pending
// manual overrides, steps both tanks and hands the readings to the store.
type Refresher struct {
	engine   Engine
	controls *control.State
	arbiter  control.Arbiter
	store    Store

	interval time.Duration
	backoff  time.Duration
	now      func() time.Time
	lastTick time.Time
}

type Option func(r *Refresher)

func WithInterval(interval time.Duration) Option {
	return func(r *Refresher) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

func WithBackoff(backoff time.Duration) Option {
	return func(r *Refresher) {
		if backoff > 0 {
			r.backoff = backoff
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Refresher) {
		r.now = now
	}
}

func New(engine Engine, controls *control.State, store Store, opts ...Option) *Refresher {
	refresher := &Refresher{
		engine:   engine,
		controls: controls,
		store:    store,
		interval: DefaultInterval,
		backoff:  DefaultBackoff,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(refresher)
	}

	return refresher
}

// Run blocks until ctx is done. A failed tick is logged and retried after
// the backoff; the loop itself never dies. An in-flight tick always runs to
// completion before Run returns.
func (r *Refresher) Run(ctx context.Context) {
	// prime the cache so the API has data before the first interval elapses
	if err := r.Tick(ctx); err != nil {
		logrus.WithError(err).Error("initial readings refresh failed")
	}

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			delay := r.interval
			if err := r.Tick(ctx); err != nil {
				logrus.WithError(err).Error("readings refresh failed")
				delay = r.backoff
			}

			timer.Reset(delay)
		}
	}
}

// Tick performs one refresh: arbiter first, then one simulation step per
// tank with the wall-clock elapsed time since the previous tick.
func (r *Refresher) Tick(ctx context.Context) error {
	now := r.now()
	elapsed := r.interval.Minutes()
	if !r.lastTick.IsZero() {
		if minutes := now.Sub(r.lastTick).Minutes(); minutes > 0 {
			elapsed = minutes
		}
	}
	r.lastTick = now

	r.arbiter.Apply(r.controls, r.engine)

	readings := make([]model.Reading, 0, 2)
	for _, id := range []model.TankID{model.TankA, model.TankB} {
		reading, err := r.engine.Step(id, elapsed)
		if err != nil {
			return fmt.Errorf("stepping %s: %w", id, err)
		}

		readings = append(readings, reading)
	}

	if err := r.store.CacheLatest(ctx, readings); err != nil {
		return fmt.Errorf("caching readings: %w", err)
	}

	// history rows are best effort, the cache already has fresh readings
	if err := r.store.SaveReadings(readings); err != nil {
		logrus.WithError(err).Warn("persisting readings failed")
	}

	return nil
}
