package repositories

import (
	"fmt"
	"log/slog"

	"tauthy/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
)

// Store bundles the repositories of one storage backend.
type Store struct {
	Users   IUserRepository
	History IHistoryRepository
	close   func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore opens the backend named by driver at path. For badger path is a directory,
// for sqlite a database file.
func OpenStore(driver, path string, log *slog.Logger) (*Store, error) {
	switch driver {
	case DriverBadger:
		db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
		return &Store{
			Users:   NewUserRepository(db),
			History: NewHistoryRepository(db, log),
			close:   db.Close,
		}, nil
	case DriverSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return &Store{
			Users:   NewSQLiteUserRepository(db),
			History: NewSQLiteHistoryRepository(db),
			close:   db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownStorageDriver, driver)
	}
}
