// Package runner executes the selected database action against the wurlitzer datastore.
package runner

import (
	"fmt"
	"io"

	"github.com/maloquacious/wurlitzer/internal/action"
	"github.com/maloquacious/wurlitzer/internal/logger"
	"github.com/maloquacious/wurlitzer/internal/schema"
	"github.com/maloquacious/wurlitzer/internal/store"
	"github.com/maloquacious/wurlitzer/internal/store/sqlite"
)

// Runner binds the database and schema locations to an action.
type Runner struct {
	DBPath     string
	SchemaPath string
	Log        logger.Logger
	Out        io.Writer
}

// Run performs a. None and Conflict only print their message.
func (r *Runner) Run(a action.Action) error {
	switch a {
	case action.None:
		fmt.Fprintln(r.Out, action.UsageMessage)
		return nil
	case action.Conflict:
		fmt.Fprintln(r.Out, action.ConflictMessage)
		return nil
	case action.Create:
		return r.withStore(a, func(s store.Store, ddl string) error {
			return s.Create(ddl)
		})
	case action.Migrate:
		return r.withStore(a, func(s store.Store, ddl string) error {
			return s.Migrate(ddl)
		})
	}
	return fmt.Errorf("unknown action %d", int(a))
}

// withStore loads the schema, then opens the database for the duration of fn.
func (r *Runner) withStore(a action.Action, fn func(store.Store, string) error) error {
	ddl, err := schema.Load(r.SchemaPath)
	if err != nil {
		return err
	}
	r.Log.Debug("loaded schema from %s (%d bytes)", r.SchemaPath, len(ddl))

	s := sqlite.New(r.DBPath)
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s, ddl); err != nil {
		return fmt.Errorf("%s %s: %w", a, r.DBPath, err)
	}
	r.Log.Info("%s: %s complete", r.DBPath, a)
	return nil
}

// Status reports the datastore state and, once the user table exists, its row count.
// A missing database file is reported without being created.
func (r *Runner) Status() (store.StoreState, int, error) {
	exists, err := store.CheckExists(r.DBPath)
	if err != nil {
		return store.StateMissing, 0, err
	}
	if !exists {
		return store.StateMissing, 0, nil
	}

	s := sqlite.New(r.DBPath)
	if err := s.Open(); err != nil {
		return store.StateMissing, 0, err
	}
	defer s.Close()

	state, err := s.CheckState()
	if err != nil || state != store.StateReady {
		return state, 0, err
	}

	n, err := s.CountUsers()
	if err != nil {
		return state, 0, err
	}
	return state, n, nil
}
