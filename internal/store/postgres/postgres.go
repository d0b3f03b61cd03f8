package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/store"
)

//go:embed schema.sql
var schemaSQL string

const uniqueViolation = "23505"

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies the embedded schema. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}

// New opens dsn, applies the schema and returns a store.
func New(ctx context.Context, dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users     { return &users{db: s.db} }
func (s *pgStore) Entries() store.Entries { return &entries{db: s.db} }
func (s *pgStore) Moods() store.Moods     { return &moods{db: s.db} }

// HealthPing implements health.Pinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *pgStore) Close() error                         { return s.db.Close() }

func isUnique(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// --- Users ---
type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	if out.UserID == "" {
		out.UserID = uuid.New().String()
	}
	if out.TimeZone == "" {
		out.TimeZone = "UTC"
	}
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, email, display_name, time_zone, password_hash)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING creation_time
    `, out.UserID, out.Email, out.DisplayName, out.TimeZone, out.PasswordHash)
	if err := row.Scan(&out.CreationTime); err != nil {
		if isUnique(err) {
			return nil, fmt.Errorf("user %s: %w", out.Email, model.ErrConflict)
		}
		return nil, err
	}
	out.CreationTime = out.CreationTime.UTC()
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, display_name, time_zone, password_hash, creation_time
        FROM users WHERE user_id=$1
    `, userID)
	out, err := scanUser(row)
	return out, store.NotFound(err, "user", userID)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, display_name, time_zone, password_hash, creation_time
        FROM users WHERE email=$1
    `, email)
	out, err := scanUser(row)
	return out, store.NotFound(err, "user", email)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var out model.User
	if err := row.Scan(&out.UserID, &out.Email, &out.DisplayName, &out.TimeZone, &out.PasswordHash, &out.CreationTime); err != nil {
		return nil, err
	}
	out.CreationTime = out.CreationTime.UTC()
	return &out, nil
}

// --- Journal entries ---
type entries struct{ db *sql.DB }

const entryColumns = `entry_id, user_id, title, content, mood, emotion, tags, is_favorite, entry_date, last_modified`

type rowScanner interface{ Scan(dest ...any) error }

func scanEntry(r rowScanner) (*model.JournalEntry, error) {
	var e model.JournalEntry
	var tags []byte
	if err := r.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.Emotion, &tags, &e.IsFavorite, &e.Date, &e.LastModified); err != nil {
		return nil, err
	}
	t, err := store.DecodeList(tags)
	if err != nil {
		return nil, err
	}
	e.Tags = t
	e.Date = e.Date.UTC()
	e.LastModified = e.LastModified.UTC()
	return &e, nil
}

func (s *entries) Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	out := e.Clone()
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	if out.Date.IsZero() {
		out.Date = time.Now()
	}
	// Postgres keeps microseconds.
	out.Date = out.Date.UTC().Truncate(time.Microsecond)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	tags, err := store.EncodeList(out.Tags)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO journal_entries (entry_id, user_id, title, content, mood, emotion, tags, is_favorite, entry_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7::jsonb,$8,$9)
        RETURNING last_modified
    `, out.ID, out.UserID, out.Title, out.Content, out.Mood, out.Emotion, tags, out.IsFavorite, out.Date)
	if err := row.Scan(&out.LastModified); err != nil {
		if isUnique(err) {
			return nil, fmt.Errorf("entry %s: %w", out.ID, model.ErrConflict)
		}
		return nil, err
	}
	out.LastModified = out.LastModified.UTC()
	return &out, nil
}

func (s *entries) List(ctx context.Context, req model.ListEntriesRequest) ([]*model.JournalEntry, error) {
	var b strings.Builder
	args := []any{req.UserID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	b.WriteString(`SELECT ` + entryColumns + ` FROM journal_entries WHERE user_id=$1`)
	if req.Start != nil {
		b.WriteString(" AND entry_date >= " + arg(*req.Start))
	}
	if req.End != nil {
		b.WriteString(" AND entry_date <= " + arg(*req.End))
	}
	if len(req.Emotions) > 0 {
		b.WriteString(" AND COALESCE(NULLIF(mood, ''), emotion) = ANY(" + arg(req.Emotions) + ")")
	}
	b.WriteString(" ORDER BY entry_date DESC, entry_id")
	if req.Limit > 0 {
		b.WriteString(" LIMIT " + arg(req.Limit))
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *entries) GetByID(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE user_id=$1 AND entry_id=$2`, userID, entryID)
	e, err := scanEntry(row)
	return e, store.NotFound(err, "entry", entryID)
}

func (s *entries) Update(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	tags, err := store.EncodeList(e.Tags)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
        UPDATE journal_entries
        SET title=$3, content=$4, mood=$5, emotion=$6, tags=$7::jsonb, entry_date=$8, last_modified=now()
        WHERE user_id=$1 AND entry_id=$2
        RETURNING `+entryColumns,
		e.UserID, e.ID, e.Title, e.Content, e.Mood, e.Emotion, tags, e.Date.UTC())
	out, err := scanEntry(row)
	return out, store.NotFound(err, "entry", e.ID)
}

func (s *entries) SetFavorite(ctx context.Context, userID, entryID string, favorite bool) (*model.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx, `
        UPDATE journal_entries SET is_favorite=$3, last_modified=now()
        WHERE user_id=$1 AND entry_id=$2
        RETURNING `+entryColumns, userID, entryID, favorite)
	out, err := scanEntry(row)
	return out, store.NotFound(err, "entry", entryID)
}

func (s *entries) Delete(ctx context.Context, userID, entryID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE user_id=$1 AND entry_id=$2`, userID, entryID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", entryID, model.ErrNotFound)
	}
	return nil
}

// --- Mood entries ---
type moods struct{ db *sql.DB }

func (s *moods) Create(ctx context.Context, m *model.MoodEntry) (*model.MoodEntry, error) {
	out := *m
	out.Emotions = append([]string{}, m.Emotions...)
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now()
	}
	out.Timestamp = out.Timestamp.UTC().Truncate(time.Microsecond)
	emotions, err := store.EncodeList(out.Emotions)
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, `
        INSERT INTO mood_entries (mood_id, user_id, rating, emotions, note, recorded_at)
        VALUES ($1,$2,$3,$4::jsonb,$5,$6)
    `, out.ID, out.UserID, out.Rating, emotions, out.Note, out.Timestamp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *moods) List(ctx context.Context, req model.ListMoodsRequest) ([]*model.MoodEntry, error) {
	var b strings.Builder
	args := []any{req.UserID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	b.WriteString(`SELECT mood_id, user_id, rating, emotions, note, recorded_at FROM mood_entries WHERE user_id=$1`)
	if req.Start != nil {
		b.WriteString(" AND recorded_at >= " + arg(*req.Start))
	}
	if req.End != nil {
		b.WriteString(" AND recorded_at <= " + arg(*req.End))
	}
	b.WriteString(" ORDER BY recorded_at ASC")

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.MoodEntry
	for rows.Next() {
		var m model.MoodEntry
		var emotions []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.Rating, &emotions, &m.Note, &m.Timestamp); err != nil {
			return nil, err
		}
		if m.Emotions, err = store.DecodeList(emotions); err != nil {
			return nil, err
		}
		m.Timestamp = m.Timestamp.UTC()
		out = append(out, &m)
	}
	return out, rows.Err()
}
