package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/store"
	"github.com/idilsaglam/reminders/internal/store/jsonstore"
	"github.com/idilsaglam/reminders/internal/store/memstore"
	"github.com/idilsaglam/reminders/internal/store/sqlitestore"
)

// openStore picks the backend named by the config. The close func is never nil.
func openStore(c config.StoreConfig) (store.NoteStore, func() error, error) {
	noop := func() error { return nil }
	switch c.Driver {
	case config.DriverMemory:
		return memstore.New(), noop, nil
	case config.DriverJSON:
		return jsonstore.New(c.Path), noop, nil
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(c.Path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("mkdir: %w", err)
		}
		s, err := sqlitestore.Open(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", c.Driver)
	}
}
