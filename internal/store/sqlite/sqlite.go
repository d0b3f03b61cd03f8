package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/store"
)

// New opens the database at path, creates the schema and returns a store.
func New(ctx context.Context, path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an existing connection whose schema is already in place.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Users() store.Users     { return &users{db: s.db} }
func (s *sqliteStore) Entries() store.Entries { return &entries{db: s.db} }
func (s *sqliteStore) Moods() store.Moods     { return &moods{db: s.db} }

func (s *sqliteStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *sqliteStore) Close() error                         { return s.db.Close() }

func toNanos(t time.Time) int64 { return t.UTC().UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

func isUnique(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && (se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
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
	out.CreationTime = time.Now().UTC()
	_, err := u.db.ExecContext(ctx, `INSERT INTO users (user_id, email, display_name, time_zone, password_hash, creation_time) VALUES (?,?,?,?,?,?)`,
		out.UserID, out.Email, out.DisplayName, out.TimeZone, out.PasswordHash, toNanos(out.CreationTime))
	if err != nil {
		if isUnique(err) {
			return nil, fmt.Errorf("user %s: %w", out.Email, model.ErrConflict)
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `SELECT user_id, email, display_name, time_zone, password_hash, creation_time FROM users WHERE user_id = ?`, userID)
	out, err := scanUser(row)
	return out, store.NotFound(err, "user", userID)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `SELECT user_id, email, display_name, time_zone, password_hash, creation_time FROM users WHERE email = ?`, email)
	out, err := scanUser(row)
	return out, store.NotFound(err, "user", email)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var out model.User
	var created int64
	if err := row.Scan(&out.UserID, &out.Email, &out.DisplayName, &out.TimeZone, &out.PasswordHash, &created); err != nil {
		return nil, err
	}
	out.CreationTime = fromNanos(created)
	return &out, nil
}

// --- Journal entries ---
type entries struct{ db *sql.DB }

const entryColumns = `entry_id, user_id, title, content, mood, emotion, tags, is_favorite, entry_date, last_modified`

type rowScanner interface{ Scan(dest ...any) error }

func scanEntry(r rowScanner) (*model.JournalEntry, error) {
	var e model.JournalEntry
	var tags string
	var date, modified int64
	if err := r.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.Emotion, &tags, &e.IsFavorite, &date, &modified); err != nil {
		return nil, err
	}
	t, err := store.DecodeList([]byte(tags))
	if err != nil {
		return nil, err
	}
	e.Tags = t
	e.Date = fromNanos(date)
	e.LastModified = fromNanos(modified)
	return &e, nil
}

func (s *entries) Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	out := e.Clone()
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if out.Date.IsZero() {
		out.Date = now
	}
	out.LastModified = now
	if out.Tags == nil {
		out.Tags = []string{}
	}
	tags, err := store.EncodeList(out.Tags)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO journal_entries (`+entryColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?)`,
		out.ID, out.UserID, out.Title, out.Content, out.Mood, out.Emotion, tags, out.IsFavorite, toNanos(out.Date), toNanos(out.LastModified))
	if err != nil {
		if isUnique(err) {
			return nil, fmt.Errorf("entry %s: %w", out.ID, model.ErrConflict)
		}
		return nil, err
	}
	out.Date = out.Date.UTC()
	return &out, nil
}

func (s *entries) List(ctx context.Context, req model.ListEntriesRequest) ([]*model.JournalEntry, error) {
	q := `SELECT ` + entryColumns + ` FROM journal_entries WHERE user_id = ?`
	args := []any{req.UserID}
	if req.Start != nil {
		q += " AND entry_date >= ?"
		args = append(args, toNanos(*req.Start))
	}
	if req.End != nil {
		q += " AND entry_date <= ?"
		args = append(args, toNanos(*req.End))
	}
	if len(req.Emotions) > 0 {
		q += " AND COALESCE(NULLIF(mood, ''), emotion) IN (?" + strings.Repeat(",?", len(req.Emotions)-1) + ")"
		for _, em := range req.Emotions {
			args = append(args, em)
		}
	}
	q += " ORDER BY entry_date DESC, entry_id"
	if req.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, req.Limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
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
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE user_id = ? AND entry_id = ?`, userID, entryID)
	e, err := scanEntry(row)
	return e, store.NotFound(err, "entry", entryID)
}

func (s *entries) Update(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	tags, err := store.EncodeList(e.Tags)
	if err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE journal_entries SET title = ?, content = ?, mood = ?, emotion = ?, tags = ?, entry_date = ?, last_modified = ?
        WHERE user_id = ? AND entry_id = ?`,
		e.Title, e.Content, e.Mood, e.Emotion, tags, toNanos(e.Date), toNanos(time.Now()), e.UserID, e.ID)
	if err := affectedOne(res, err, e.ID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, e.UserID, e.ID)
}

func (s *entries) SetFavorite(ctx context.Context, userID, entryID string, favorite bool) (*model.JournalEntry, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE journal_entries SET is_favorite = ?, last_modified = ? WHERE user_id = ? AND entry_id = ?`,
		favorite, toNanos(time.Now()), userID, entryID)
	if err := affectedOne(res, err, entryID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID, entryID)
}

func (s *entries) Delete(ctx context.Context, userID, entryID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE user_id = ? AND entry_id = ?`, userID, entryID)
	return affectedOne(res, err, entryID)
}

func affectedOne(res sql.Result, err error, entryID string) error {
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
	out.Timestamp = out.Timestamp.UTC()
	emotions, err := store.EncodeList(out.Emotions)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO mood_entries (mood_id, user_id, rating, emotions, note, recorded_at) VALUES (?,?,?,?,?,?)`,
		out.ID, out.UserID, out.Rating, emotions, out.Note, toNanos(out.Timestamp))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *moods) List(ctx context.Context, req model.ListMoodsRequest) ([]*model.MoodEntry, error) {
	q := `SELECT mood_id, user_id, rating, emotions, note, recorded_at FROM mood_entries WHERE user_id = ?`
	args := []any{req.UserID}
	if req.Start != nil {
		q += " AND recorded_at >= ?"
		args = append(args, toNanos(*req.Start))
	}
	if req.End != nil {
		q += " AND recorded_at <= ?"
		args = append(args, toNanos(*req.End))
	}
	q += " ORDER BY recorded_at ASC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.MoodEntry
	for rows.Next() {
		var m model.MoodEntry
		var emotions string
		var ts int64
		if err := rows.Scan(&m.ID, &m.UserID, &m.Rating, &emotions, &m.Note, &ts); err != nil {
			return nil, err
		}
		if m.Emotions, err = store.DecodeList([]byte(emotions)); err != nil {
			return nil, err
		}
		m.Timestamp = fromNanos(ts)
		out = append(out, &m)
	}
	return out, rows.Err()
}
