// Package bootstrap brings a datastore to the ready state at startup.
//
// Run is the only entry point. It owns the store handle for the duration of
// the run: the handle is opened at the start and closed before Run returns,
// whatever the outcome.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/store"
)

// Options configures a bootstrap run.
type Options struct {
	// Store is the datastore to initialize. Required.
	Store store.Store
	// DataDir is created (with parents) before the store is opened.
	// Leave empty for backends that do not live on the local filesystem.
	DataDir string
	// Logger receives progress records. Nil means logger.Default.
	Logger logger.Logger
}

// Step records one completed stage of a run.
type Step struct {
	Name     string
	Duration time.Duration
}

// Result describes a finished run.
type Result struct {
	RunID string
	Steps []Step
	State store.StoreState
}

// Step names, in execution order.
const (
	StepDataDir = "data dir"
	StepOpen    = "open"
	StepSchema  = "ensure schema"
	StepIndexes = "ensure indexes"
	StepSeed    = "seed defaults"
	StepState   = "check state"
)

// ErrNoStore is returned when Options.Store is nil.
var ErrNoStore = errors.New("bootstrap: no store configured")

// runs are serialized process-wide; two bootstraps against the same
// datastore must never interleave their statements.
var mu sync.Mutex

// Run creates the data directory, opens the store, ensures the schema and
// indexes, seeds the defaults and closes the store. The first failing step
// stops the run; its error is returned wrapped with the step name.
func Run(ctx context.Context, opts Options) (res Result, err error) {
	if opts.Store == nil {
		return Result{}, ErrNoStore
	}

	mu.Lock()
	defer mu.Unlock()

	res.RunID = uuid.Must(uuid.NewV7()).String()
	log := opts.Logger
	if log == nil {
		log = logger.Default
	}
	if sl, ok := log.(*logger.SlogLogger); ok {
		log = sl.With("run_id", res.RunID)
	}

	started := time.Now()
	log.Info("bootstrap started")

	step := func(name string, fn func() error) error {
		t0 := time.Now()
		if err := fn(); err != nil {
			log.Error("bootstrap step failed", "step", name, "error", err)
			return fmt.Errorf("%s: %w", name, err)
		}
		d := time.Since(t0)
		res.Steps = append(res.Steps, Step{Name: name, Duration: d})
		log.Debug("bootstrap step done", "step", name, "duration", d)
		return nil
	}

	if opts.DataDir != "" {
		if err := step(StepDataDir, func() error { return store.EnsureDir(opts.DataDir) }); err != nil {
			return res, err
		}
	}

	if err := step(StepOpen, func() error { return opts.Store.Open(ctx) }); err != nil {
		// a failed Open may still hold a partially built handle
		_ = opts.Store.Close()
		return res, err
	}
	defer func() {
		if cerr := opts.Store.Close(); cerr != nil {
			log.Warn("failed to close store", "error", cerr)
			if err == nil {
				err = fmt.Errorf("close: %w", cerr)
			}
		}
	}()

	for _, s := range []struct {
		name string
		fn   func(context.Context) error
	}{
		{StepSchema, opts.Store.EnsureSchema},
		{StepIndexes, opts.Store.EnsureIndexes},
		{StepSeed, opts.Store.SeedDefaults},
	} {
		if err := step(s.name, func() error { return s.fn(ctx) }); err != nil {
			return res, err
		}
	}

	if err := step(StepState, func() error {
		state, err := opts.Store.CheckState(ctx)
		res.State = state
		return err
	}); err != nil {
		return res, err
	}

	log.Info("bootstrap complete", "state", res.State.String(), "elapsed", time.Since(started))
	return res, nil
}
