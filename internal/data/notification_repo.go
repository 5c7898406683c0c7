package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/campushq/campushq-api/internal/data/pgxutil"
	"github.com/campushq/campushq-api/internal/domain/model"
)

const notificationColumns = `id, org_id, title, body, audience, created_at, updated_at`

// NotificationRepo provides database operations for tenant announcements.
type NotificationRepo struct {
	DB *sql.DB
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{DB: db}
}

// Create inserts a new notification.
func (r *NotificationRepo) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
	if req == nil {
		return nil, errors.New("create notification request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	audience, _ := model.ParseNotificationAudience(req.Audience)

	var out model.Notification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO notifications (org_id, title, body, audience)
			VALUES ($1, $2, $3, $4)
			RETURNING `+notificationColumns,
			req.OrgID, strings.TrimSpace(req.Title), req.Body, audience,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return qerr
	}); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a notification by ID.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	var out model.Notification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &out, nil
}

// List retrieves an organization's notifications, newest first, optionally
// filtered to those visible to an audience.
func (r *NotificationRepo) List(ctx context.Context, orgID string, audience model.NotificationAudience) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE org_id = $1`
	args := []any{orgID}
	if audience != "" && audience != model.AudienceAll {
		query += ` AND audience IN ('all', $2)`
		args = append(args, audience)
	}
	query += ` ORDER BY created_at DESC`

	var out []model.Notification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

// Update applies a partial update and returns the updated notification.
func (r *NotificationRepo) Update(ctx context.Context, id string, req *model.UpdateNotificationRequest) (*model.Notification, error) {
	if req == nil {
		return nil, errors.New("update notification request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var audience *model.NotificationAudience
	if req.Audience != nil {
		a, _ := model.ParseNotificationAudience(*req.Audience)
		audience = &a
	}

	var out model.Notification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			UPDATE notifications SET
				title = COALESCE($2, title),
				body = COALESCE($3, body),
				audience = COALESCE($4, audience),
				updated_at = now()
			WHERE id = $1
			RETURNING `+notificationColumns,
			id, req.Title, req.Body, audience,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return qerr
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return &out, nil
}

// Delete removes a notification.
func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete notification rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
