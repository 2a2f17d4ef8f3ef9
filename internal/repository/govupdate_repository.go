package repository

import (
	"context"
	"time"

	"github.com/alok-48/GuruMitra/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GovUpdateRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGovUpdateRepository(db *pgxpool.Pool, logger *zap.Logger) *GovUpdateRepository {
	return &GovUpdateRepository{
		db:     db,
		logger: logger,
	}
}

var govUpdateColumns = []string{
	"id", "title", "original_text", "simplified_text", "category",
	"action_required", "action_deadline", "source_url", "is_verified",
	"published_at", "created_at",
}

func scanGovUpdate(row pgxRow) (*models.GovUpdate, error) {
	var u models.GovUpdate
	err := row.Scan(
		&u.ID, &u.Title, &u.OriginalText, &u.SimplifiedText, &u.Category,
		&u.ActionRequired, &u.ActionDeadline, &u.SourceURL, &u.IsVerified,
		&u.PublishedAt, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns one page of verified updates newest first, optionally
// narrowed to a category.
func (r *GovUpdateRepository) List(ctx context.Context, category string, limit, offset int) ([]*models.GovUpdate, error) {
	query := squirrel.Select(govUpdateColumns...).
		From("gov_updates").
		Where(squirrel.Eq{"is_verified": true}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if category != "" && category != "all" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	return r.queryUpdates(ctx, query)
}

// ActionRequired returns verified updates still awaiting user action,
// nearest deadline first.
func (r *GovUpdateRepository) ActionRequired(ctx context.Context, now time.Time) ([]*models.GovUpdate, error) {
	query := squirrel.Select(govUpdateColumns...).
		From("gov_updates").
		Where(squirrel.Eq{"is_verified": true, "action_required": true}).
		Where(squirrel.Or{
			squirrel.Eq{"action_deadline": nil},
			squirrel.Gt{"action_deadline": now},
		}).
		OrderBy("action_deadline ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryUpdates(ctx, query)
}

func (r *GovUpdateRepository) queryUpdates(ctx context.Context, query squirrel.SelectBuilder) ([]*models.GovUpdate, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []*models.GovUpdate
	for rows.Next() {
		update, err := scanGovUpdate(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}
	return updates, rows.Err()
}

func (r *GovUpdateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GovUpdate, error) {
	query := squirrel.Select(govUpdateColumns...).
		From("gov_updates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanGovUpdate(r.db.QueryRow(ctx, sql, args...))
}

func (r *GovUpdateRepository) Create(ctx context.Context, update *models.GovUpdate) error {
	query := squirrel.Insert("gov_updates").
		Columns(govUpdateColumns...).
		Values(
			update.ID, update.Title, update.OriginalText, update.SimplifiedText,
			update.Category, update.ActionRequired, update.ActionDeadline,
			update.SourceURL, update.IsVerified, update.PublishedAt, update.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
