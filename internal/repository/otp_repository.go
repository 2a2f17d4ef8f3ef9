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

type OTPRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOTPRepository(db *pgxpool.Pool, logger *zap.Logger) *OTPRepository {
	return &OTPRepository{
		db:     db,
		logger: logger,
	}
}

func (r *OTPRepository) Create(ctx context.Context, otp *models.OTPCode) error {
	query := squirrel.Insert("otp_codes").
		Columns("id", "phone", "code_hash", "expires_at", "is_used", "created_at").
		Values(otp.ID, otp.Phone, otp.CodeHash, otp.ExpiresAt, otp.IsUsed, otp.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetLatestValid returns the newest unused, unexpired code for a phone
// number.
func (r *OTPRepository) GetLatestValid(ctx context.Context, phone string, now time.Time) (*models.OTPCode, error) {
	query := squirrel.Select("id", "phone", "code_hash", "expires_at", "is_used", "created_at").
		From("otp_codes").
		Where(squirrel.Eq{"phone": phone, "is_used": false}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var otp models.OTPCode
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&otp.ID, &otp.Phone, &otp.CodeHash, &otp.ExpiresAt, &otp.IsUsed, &otp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Update("otp_codes").
		Set("is_used", true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
