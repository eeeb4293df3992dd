package store

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
)

// AddEvent inserts a new event. An empty description is stored as NULL.
func (s *Store) AddEvent(ctx context.Context, e records.Event) (Result, error) {
	return s.exec(ctx, "add event", `
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.EventID, e.Name, nullString(e.Description), e.Date, e.Location, e.Organizer, e.Category)
}

// GetEvent retrieves an event by id.
func (s *Store) GetEvent(ctx context.Context, eventID string) (records.Event, bool, error) {
	e, found, err := queryOne(ctx, s.db, scanEvent, `
		SELECT `+eventColumns+`
		FROM events
		WHERE event_id = ?
	`, eventID)
	if err != nil {
		return records.Event{}, false, fmt.Errorf("get event: %w", err)
	}
	return e, found, nil
}

// ListEvents returns every event, most recent date first.
// Dates are YYYY-MM-DD text, so text order is chronological order.
func (s *Store) ListEvents(ctx context.Context) ([]records.Event, error) {
	events, err := queryAll(ctx, s.db, scanEvent, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY date DESC, event_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event.
func (s *Store) DeleteEvent(ctx context.Context, eventID string) (Result, error) {
	return s.exec(ctx, "delete event", `DELETE FROM events WHERE event_id = ?`, eventID)
}
