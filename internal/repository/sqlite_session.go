package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itinerolabs/itinero/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	doc, err := json.Marshal(s.Bundle)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO sessions (id, origin, destination, bundle, narrative_summary, revision, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		s.ID,
		s.Origin,
		s.Destination,
		string(doc),
		s.NarrativeSummary,
		s.Revision,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for _, m := range s.ChatHistory {
		if err := insertChatMessage(ctx, tx, s.ID, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session insert: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, origin, destination, bundle, narrative_summary, revision, created_at, updated_at
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSession(row)
	if err != nil {
		return nil, err
	}

	history, err := r.listChatMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ChatHistory = history
	return s, nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT id, origin, destination, bundle, narrative_summary, revision, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) ReplaceBundle(ctx context.Context, id string, bundle domain.Bundle, revision int) error {
	doc, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}

	query := `UPDATE sessions SET bundle = ?, revision = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(doc), revision, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("replacing session bundle: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking bundle replacement: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) AppendChatMessage(ctx context.Context, sessionID string, m domain.ChatMessage) error {
	if err := insertChatMessage(ctx, r.db, sessionID, m); err != nil {
		return err
	}
	query := `UPDATE sessions SET updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), sessionID); err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertChatMessage(ctx context.Context, ex execer, sessionID string, m domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, session_id, role, text, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := ex.ExecContext(ctx, query,
		m.ID,
		sessionID,
		string(m.Role),
		m.Text,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) listChatMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	query := `SELECT id, role, text, created_at
		FROM chat_messages WHERE session_id = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var history []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var role, createdAtStr string
		if err := rows.Scan(&m.ID, &role, &m.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Role = domain.ChatRole(role)
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing chat message created_at: %w", err)
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat messages: %w", err)
	}
	return history, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession scans a session row; chat history is loaded separately.
func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var doc, createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.Origin, &s.Destination, &doc, &s.NarrativeSummary, &s.Revision, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	if err := json.Unmarshal([]byte(doc), &s.Bundle); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
