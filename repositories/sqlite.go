package repositories

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"tauthy/domain"
	"tauthy/errors"
	pb "tauthy/proto/tauthy/v1"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at    INTEGER NOT NULL
);

-- entry holds the full pb.HistoryEntry; the other columns are copies kept for ad hoc queries.
CREATE TABLE IF NOT EXISTS history (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL REFERENCES users(id),
    input_text    TEXT NOT NULL,
    label         TEXT NOT NULL,
    ai_percent    REAL NOT NULL,
    human_percent REAL NOT NULL,
    feedback      TEXT NOT NULL DEFAULT '',
    created_at    INTEGER NOT NULL,
    entry         BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS history_user_created ON history (user_id, created_at DESC);
`

// OpenSQLite opens (or creates) the database file and applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

type SQLiteUserRepository struct {
	db *sql.DB
}

func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

func (s *SQLiteUserRepository) CreateUser(newUser NewUser) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO users (id, first_name, last_name, username, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, newUser.FirstName, newUser.LastName, newUser.Username, newUser.Email, newUser.PasswordHash,
		time.Now().UTC().UnixNano(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return "", errors.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

const userColumns = `id, first_name, last_name, username, email, password_hash, created_at`

func (s *SQLiteUserRepository) GetUserByUsername(username string) (User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (s *SQLiteUserRepository) GetUserByID(id string) (User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (s *SQLiteUserRepository) UpdatePasswordHash(id, hash string) error {
	res, err := s.db.Exec(`UPDATE users SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var createdAt int64
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.PasswordHash, &createdAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return User{}, errors.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	return user, nil
}

type SQLiteHistoryRepository struct {
	db *sql.DB
}

func NewSQLiteHistoryRepository(db *sql.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

func (s *SQLiteHistoryRepository) Save(entry domain.HistoryEntry) error {
	data, err := proto.Marshal(toPbHistoryEntry(entry))
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO history (id, user_id, input_text, label, ai_percent, human_percent, feedback, created_at, entry)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Text, entry.Label, entry.AIPercent(), entry.HumanPercent(),
		string(entry.Feedback), entry.CreatedAt.UnixNano(), data,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryRepository) Get(userID, id string) (domain.HistoryEntry, error) {
	rows, err := s.db.Query(`SELECT entry FROM history WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	entries, err := scanHistory(rows)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	if len(entries) == 0 {
		return domain.HistoryEntry{}, errors.ErrNotFound
	}
	return entries[0], nil
}

func (s *SQLiteHistoryRepository) ListByUser(userID string, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT entry FROM history WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	return scanHistory(rows)
}

func (s *SQLiteHistoryRepository) UpdateFeedback(userID, id string, feedback domain.Feedback) error {
	return s.modify(userID, id, func(entry *domain.HistoryEntry) {
		entry.Feedback = feedback
	})
}

func (s *SQLiteHistoryRepository) SetOpinion(userID, id string, opinion domain.SecondOpinion) error {
	return s.modify(userID, id, func(entry *domain.HistoryEntry) {
		entry.Opinion = &opinion
	})
}

// modify rewrites the stored message and the feedback column in one transaction.
func (s *SQLiteHistoryRepository) modify(userID, id string, change func(*domain.HistoryEntry)) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.Query(`SELECT entry FROM history WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	entries, err := scanHistory(rows)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.ErrNotFound
	}
	entry := entries[0]
	change(&entry)
	data, err := proto.Marshal(toPbHistoryEntry(entry))
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	if _, err := tx.Exec(`UPDATE history SET feedback = ?, entry = ? WHERE id = ?`,
		string(entry.Feedback), data, id); err != nil {
		return err
	}
	return tx.Commit()
}

func scanHistory(rows *sql.Rows) ([]domain.HistoryEntry, error) {
	defer rows.Close()
	var entries []domain.HistoryEntry
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var entryPb pb.HistoryEntry
		if err := proto.Unmarshal(data, &entryPb); err != nil {
			return nil, fmt.Errorf("unmarshal history entry: %w", err)
		}
		entries = append(entries, toHistoryEntry(&entryPb))
	}
	return entries, rows.Err()
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.ErrNotFound
	}
	return nil
}
