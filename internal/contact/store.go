package contact

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/webluciano/folio/internal/db"
)

// Store persists contact messages.
type Store struct {
	db *db.DB

	webhook *Webhook
	log     *slog.Logger
	pending sync.WaitGroup
}

// NewStore creates a new contact store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// SetWebhook forwards every stored message to w in the background.
// Delivery failures are logged and never fail the submission.
func (s *Store) SetWebhook(w *Webhook, logger *slog.Logger) {
	s.webhook = w
	s.log = logger
}

// Wait blocks until pending webhook deliveries have finished.
func (s *Store) Wait() { s.pending.Wait() }

// Create validates and stores a message, assigning its ID and timestamp.
func (s *Store) Create(ctx context.Context, m Message) (*Message, error) {
	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, remote_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.RemoteAddr, m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting contact message: %w", err)
	}

	if s.webhook != nil {
		s.pending.Add(1)
		go func(m Message) {
			defer s.pending.Done()
			if err := s.webhook.Send(context.WithoutCancel(ctx), m); err != nil && s.log != nil {
				s.log.Warn("contact webhook delivery failed", "id", m.ID, "url", s.webhook.URL, "err", err)
			}
		}(m)
	}
	return &m, nil
}

// List returns the most recent messages first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Message, error) {
	query := `SELECT id, name, email, subject, message, remote_addr, created_at
		 FROM contact_messages ORDER BY created_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.RemoteAddr, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Count returns the number of stored messages.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting contact messages: %w", err)
	}
	return n, nil
}
