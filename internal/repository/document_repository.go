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

type DocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

var documentColumns = []string{
	"id", "user_id", "title", "category", "file_path", "file_type",
	"file_size", "ocr_text", "expiry_date", "tags", "is_verified", "created_at",
}

func scanDocument(row pgxRow) (*models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID, &d.UserID, &d.Title, &d.Category, &d.FilePath, &d.FileType,
		&d.FileSize, &d.OCRText, &d.ExpiryDate, &d.Tags, &d.IsVerified, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := squirrel.Insert("documents").
		Columns(documentColumns...).
		Values(
			doc.ID, doc.UserID, doc.Title, doc.Category, doc.FilePath,
			doc.FileType, doc.FileSize, doc.OCRText, doc.ExpiryDate,
			doc.Tags, doc.IsVerified, doc.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUserID returns the user's documents newest first, optionally
// filtered to one category.
func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID, category string) ([]*models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" && category != "all" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanDocument(r.db.QueryRow(ctx, sql, args...))
}

func (r *DocumentRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("documents").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// CountByCategory returns per-category document counts for the vault
// overview.
func (r *DocumentRepository) CountByCategory(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	query := squirrel.Select("category", "COUNT(*)").
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("category").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

// UpcomingDeadlines returns documents whose expiry date is still ahead,
// soonest first.
func (r *DocumentRepository) UpcomingDeadlines(ctx context.Context, userID uuid.UUID, after time.Time, limit int) ([]*models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"expiry_date": nil}).
		Where(squirrel.Gt{"expiry_date": after}).
		OrderBy("expiry_date ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
