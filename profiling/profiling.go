package profiling

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/percona/pt-mongodb-slow-query-check/proto"
	"github.com/percona/pt-mongodb-slow-query-check/report"
)

const (
	// ProfileCollection is where MongoDB writes profiling records.
	ProfileCollection = "system.profile"

	LevelOff = 0 // profiling disabled
	LevelAll = 2 // capture all operations
)

// DataStore is the part of the database this tool talks to.
type DataStore interface {
	SetProfilingLevel(ctx context.Context, level int) error
	QueryProfilingLog(ctx context.Context) ([]proto.ProfiledOperation, error)
	CollectionExists(ctx context.Context, name string) (bool, error)
	DropCollection(ctx context.Context, name string) error
}

// Begin enables capture-all profiling. With clean it first disables the
// profiler and purges the records of any previous run.
func Begin(ctx context.Context, store DataStore, clean bool) error {
	if clean {
		if err := Reset(ctx, store); err != nil {
			return err
		}
	}
	if err := store.SetProfilingLevel(ctx, LevelAll); err != nil {
		return errors.Wrap(err, "cannot enable profiling")
	}
	log.Debug("profiling enabled at capture-all level")
	return nil
}

// Report fetches the candidate slow operations from the profiling log,
// writes the report to w and returns whether any were found. With clean,
// profiling state is reset afterward.
func Report(ctx context.Context, store DataStore, b report.Builder, w io.Writer, clean bool) (bool, error) {
	docs, err := store.QueryProfilingLog(ctx)
	if err != nil {
		return false, errors.Wrap(err, "cannot read the profiling log")
	}
	log.Debugf("the profiling log has %d candidate operations", len(docs))

	ops, err := report.FromProfile(docs)
	if err != nil {
		return false, err
	}

	found, err := b.Write(w, ops)
	if err != nil {
		return found, err
	}

	if clean {
		if err := Reset(ctx, store); err != nil {
			return found, err
		}
	}
	return found, nil
}

// Reset disables the profiler, then drops the profiling log collection if it
// exists. It is best-effort cleanup, not transactional with the surrounding
// action: profiling must be off before the log can be dropped safely.
func Reset(ctx context.Context, store DataStore) error {
	if err := store.SetProfilingLevel(ctx, LevelOff); err != nil {
		return errors.Wrap(err, "cannot disable profiling")
	}
	exists, err := store.CollectionExists(ctx, ProfileCollection)
	if err != nil {
		return errors.Wrapf(err, "cannot check for the %s collection", ProfileCollection)
	}
	if !exists {
		return nil
	}
	if err := store.DropCollection(ctx, ProfileCollection); err != nil {
		return errors.Wrapf(err, "cannot drop the %s collection", ProfileCollection)
	}
	return nil
}
