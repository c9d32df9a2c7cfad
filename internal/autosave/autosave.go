// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package autosave debounces draft writes of the landing document. Editors
// push every change through Update; the debouncer coalesces bursts and
// persists once the configured quiet window elapses, or immediately on
// Flush. The state machine is explicit: idle, scheduled (a timer is
// armed), saving (a write is in flight).
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pagesmith/internal/models"
)

// State names the debouncer's current phase.
type State string

const (
	StateIdle      State = "idle"
	StateScheduled State = "scheduled"
	StateSaving    State = "saving"
)

// DefaultInterval is the quiet window before a scheduled save fires.
const DefaultInterval = 8 * time.Second

// saveTimeout bounds a single background save attempt.
const saveTimeout = 15 * time.Second

// SaveFunc persists the document, honoring the expected version, and
// returns the new version.
type SaveFunc func(ctx context.Context, cfg *models.LandingConfig, expectVersion int64) (int64, error)

// Status is a snapshot of the debouncer for the status endpoint.
type Status struct {
	State     State     `json:"state"`
	Dirty     bool      `json:"dirty"`
	Version   int64     `json:"version"`
	LastSaved time.Time `json:"lastSaved,omitzero"`
	LastError string    `json:"lastError,omitempty"`
}

// Debouncer coalesces document updates into debounced saves.
type Debouncer struct {
	save     SaveFunc
	interval time.Duration

	mu        sync.Mutex
	saved     *sync.Cond // signaled when an in-flight save completes
	state     State
	timer     *time.Timer
	pending   *models.LandingConfig
	dirty     bool
	version   int64 // expected version for the next save
	lastSaved time.Time
	lastErr   error
}

// New creates a debouncer that persists through save after interval of
// quiet. A zero interval uses DefaultInterval.
func New(save SaveFunc, interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	d := &Debouncer{save: save, interval: interval, state: StateIdle}
	d.saved = sync.NewCond(&d.mu)
	return d
}

// Update records the latest draft and (re)arms the save timer. Each call
// during the quiet window pushes the save further out, so a typing burst
// produces one write. version is the document version the editor loaded.
func (d *Debouncer) Update(cfg *models.LandingConfig, version int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = cfg
	d.version = version
	d.dirty = true

	if d.state == StateSaving {
		// The in-flight save will reschedule when it finishes.
		return
	}

	d.state = StateScheduled
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

// fire runs when the quiet window elapses.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.dirty || d.state == StateSaving {
		d.mu.Unlock()
		return
	}
	cfg, version := d.pending, d.version
	d.state = StateSaving
	d.dirty = false
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	newVersion, err := d.save(ctx, cfg, version)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastErr = err
	if err != nil {
		slog.Warn("autosave failed", "error", err)
		// Keep the draft dirty so a later update or flush retries.
		d.dirty = true
	} else {
		d.lastSaved = time.Now()
		d.version = newVersion
		slog.Debug("autosave complete", "version", newVersion)
	}

	if d.dirty {
		d.state = StateScheduled
		d.timer = time.AfterFunc(d.interval, d.fire)
	} else {
		d.state = StateIdle
	}
	d.saved.Broadcast()
}

// Flush persists any pending draft immediately, bypassing the timer.
// Returns the current version and the save error, if any. A flush that
// races an in-flight timer save waits for it instead of issuing a second
// write with the same expected version.
func (d *Debouncer) Flush(ctx context.Context) (int64, error) {
	d.mu.Lock()
	for d.state == StateSaving {
		d.saved.Wait()
	}
	if !d.dirty {
		version := d.version
		d.mu.Unlock()
		return version, nil
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	cfg, version := d.pending, d.version
	d.state = StateSaving
	d.dirty = false
	d.mu.Unlock()

	newVersion, err := d.save(ctx, cfg, version)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastErr = err
	if err != nil {
		d.dirty = true
		d.state = StateScheduled
		d.timer = time.AfterFunc(d.interval, d.fire)
		d.saved.Broadcast()
		return d.version, err
	}

	d.lastSaved = time.Now()
	d.version = newVersion
	if d.dirty {
		d.state = StateScheduled
		d.timer = time.AfterFunc(d.interval, d.fire)
	} else {
		d.state = StateIdle
	}
	d.saved.Broadcast()
	return newVersion, nil
}

// Status returns a snapshot of the debouncer state.
func (d *Debouncer) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Status{
		State:     d.state,
		Dirty:     d.dirty,
		Version:   d.version,
		LastSaved: d.lastSaved,
	}
	if d.lastErr != nil {
		s.LastError = d.lastErr.Error()
	}
	return s
}

// Stop cancels any armed timer. Pending changes are not saved; call Flush
// first during shutdown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.state = StateIdle
}
