// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package autosave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pagesmith/internal/models"
)

// recordingSaver counts saves and can be told to fail.
type recordingSaver struct {
	mu      sync.Mutex
	calls   int
	fail    error
	version int64
}

func (r *recordingSaver) save(ctx context.Context, cfg *models.LandingConfig, expect int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail != nil {
		return 0, r.fail
	}
	r.version = expect + 1
	return r.version, nil
}

func (r *recordingSaver) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func doc() *models.LandingConfig {
	return &models.LandingConfig{Version: "1.0", Pages: map[string]models.LandingPage{}}
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDebounceCoalescesBurst(t *testing.T) {
	saver := &recordingSaver{}
	d := New(saver.save, 40*time.Millisecond)
	defer d.Stop()

	// A burst of edits inside the quiet window.
	for i := 0; i < 5; i++ {
		d.Update(doc(), 1)
		time.Sleep(5 * time.Millisecond)
	}

	if got := saver.callCount(); got != 0 {
		t.Fatalf("saved during the quiet window: %d calls", got)
	}

	waitFor(t, time.Second, func() bool { return saver.callCount() == 1 })
	waitFor(t, time.Second, func() bool { return d.Status().State == StateIdle })

	st := d.Status()
	if st.Dirty {
		t.Error("saved draft must not stay dirty")
	}
	if st.Version != 2 {
		t.Errorf("version = %d, want 2", st.Version)
	}
}

func TestUpdateResetsTimer(t *testing.T) {
	saver := &recordingSaver{}
	d := New(saver.save, 50*time.Millisecond)
	defer d.Stop()

	d.Update(doc(), 1)
	time.Sleep(30 * time.Millisecond)
	d.Update(doc(), 1) // pushes the save out again

	time.Sleep(30 * time.Millisecond)
	if got := saver.callCount(); got != 0 {
		t.Fatalf("timer was not reset: %d calls", got)
	}

	waitFor(t, time.Second, func() bool { return saver.callCount() == 1 })
}

func TestFlushSavesImmediately(t *testing.T) {
	saver := &recordingSaver{}
	d := New(saver.save, time.Hour) // would never fire on its own
	defer d.Stop()

	d.Update(doc(), 7)

	version, err := d.Flush(context.Background())
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if version != 8 {
		t.Errorf("version = %d, want 8", version)
	}
	if saver.callCount() != 1 {
		t.Errorf("calls = %d, want 1", saver.callCount())
	}
	if st := d.Status(); st.State != StateIdle || st.Dirty {
		t.Errorf("post-flush status = %+v", st)
	}
}

func TestFlushWithoutChangesIsNoop(t *testing.T) {
	saver := &recordingSaver{}
	d := New(saver.save, time.Hour)
	defer d.Stop()

	if _, err := d.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if saver.callCount() != 0 {
		t.Errorf("clean flush must not save, got %d calls", saver.callCount())
	}
}

func TestFailedSaveStaysDirtyAndRetries(t *testing.T) {
	saveErr := errors.New("db down")
	saver := &recordingSaver{fail: saveErr}
	d := New(saver.save, 30*time.Millisecond)
	defer d.Stop()

	d.Update(doc(), 1)
	waitFor(t, time.Second, func() bool { return saver.callCount() >= 1 })

	waitFor(t, time.Second, func() bool {
		st := d.Status()
		return st.Dirty && st.LastError != ""
	})

	// Recover the backend; the rescheduled retry must succeed.
	saver.mu.Lock()
	saver.fail = nil
	saver.mu.Unlock()

	waitFor(t, time.Second, func() bool {
		st := d.Status()
		return st.State == StateIdle && !st.Dirty && st.LastError == ""
	})
}

// blockingSaver parks inside save until released, and tracks how many
// saves run at once.
type blockingSaver struct {
	started  chan struct{}
	release  chan struct{}
	mu       sync.Mutex
	inFlight int
	maxSeen  int
	calls    int
}

func newBlockingSaver() *blockingSaver {
	return &blockingSaver{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (b *blockingSaver) save(ctx context.Context, cfg *models.LandingConfig, expect int64) (int64, error) {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.inFlight++
	if b.inFlight > b.maxSeen {
		b.maxSeen = b.inFlight
	}
	b.mu.Unlock()

	if first {
		b.started <- struct{}{}
		<-b.release
	}

	b.mu.Lock()
	b.inFlight--
	b.mu.Unlock()
	return expect + 1, nil
}

// TestFlushWaitsForInFlightSave pins the single-writer invariant: a flush
// racing a timer save must wait for it rather than issue a second write
// carrying the same expected version.
func TestFlushWaitsForInFlightSave(t *testing.T) {
	saver := newBlockingSaver()
	d := New(saver.save, 20*time.Millisecond)
	defer d.Stop()

	d.Update(doc(), 1)
	<-saver.started // timer save is now parked inside the saver

	// A new edit arrives while the save is in flight.
	d.Update(doc(), 1)

	flushed := make(chan struct{})
	var version int64
	var flushErr error
	go func() {
		version, flushErr = d.Flush(context.Background())
		close(flushed)
	}()

	// The flush must block while the first save is still running.
	select {
	case <-flushed:
		t.Fatal("Flush returned while a save was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(saver.release)
	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("Flush did not return after the save completed")
	}

	if flushErr != nil {
		t.Fatalf("Flush: %v", flushErr)
	}
	// Timer save took version 1→2, the flush then saved the newer edit 2→3.
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}

	saver.mu.Lock()
	defer saver.mu.Unlock()
	if saver.maxSeen > 1 {
		t.Errorf("%d saves ran concurrently, want at most 1", saver.maxSeen)
	}
	if saver.calls != 2 {
		t.Errorf("calls = %d, want 2", saver.calls)
	}
}

func TestFlushReturnsSaveError(t *testing.T) {
	saveErr := errors.New("conflict")
	saver := &recordingSaver{fail: saveErr}
	d := New(saver.save, time.Hour)
	defer d.Stop()

	d.Update(doc(), 1)
	if _, err := d.Flush(context.Background()); !errors.Is(err, saveErr) {
		t.Errorf("Flush error = %v, want %v", err, saveErr)
	}
	if st := d.Status(); !st.Dirty {
		t.Error("failed flush must keep the draft dirty")
	}
	d.Stop()
}
