package syncx

import (
	"context"
	"database/sql"
	"time"
)

// EventRepo appends submission events (e.g. AttemptSubmitted) to the
// event_log table for offline sync and analytics export.
type EventRepo struct {
	db     *sql.DB
	siteID string
}

func NewEventRepo(db *sql.DB, siteID string) *EventRepo {
	if siteID == "" {
		siteID = "local"
	}
	return &EventRepo{db: db, siteID: siteID}
}

func (r *EventRepo) Append(ctx context.Context, typ, key, data string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		r.siteID, typ, key, data, time.Now().Unix())
	return err
}
