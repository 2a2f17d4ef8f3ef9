package repository

import (
	"context"

	"github.com/alok-48/GuruMitra/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PensionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPensionRepository(db *pgxpool.Pool, logger *zap.Logger) *PensionRepository {
	return &PensionRepository{
		db:     db,
		logger: logger,
	}
}

var pensionColumns = []string{
	"id", "user_id", "pension_type", "ppo_number", "bank_name",
	"bank_account", "monthly_amount", "status", "created_at", "updated_at",
}

func scanPension(row pgxRow) (*models.PensionData, error) {
	var p models.PensionData
	err := row.Scan(
		&p.ID, &p.UserID, &p.PensionType, &p.PPONumber, &p.BankName,
		&p.BankAccount, &p.MonthlyAmount, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var paymentColumns = []string{
	"id", "pension_id", "user_id", "amount", "credited_date",
	"month_year", "status", "created_at",
}

func scanPayment(row pgxRow) (models.PensionPayment, error) {
	var p models.PensionPayment
	err := row.Scan(
		&p.ID, &p.PensionID, &p.UserID, &p.Amount, &p.CreditedDate,
		&p.MonthYear, &p.Status, &p.CreatedAt,
	)
	return p, err
}

func (r *PensionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.PensionData, error) {
	query := squirrel.Select(pensionColumns...).
		From("pension_data").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPension(r.db.QueryRow(ctx, sql, args...))
}

func (r *PensionRepository) Create(ctx context.Context, data *models.PensionData) error {
	query := squirrel.Insert("pension_data").
		Columns(pensionColumns...).
		Values(
			data.ID, data.UserID, data.PensionType, data.PPONumber,
			data.BankName, data.BankAccount, data.MonthlyAmount,
			data.Status, data.CreatedAt, data.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// RecentPayments returns the latest credited payments, newest first.
func (r *PensionRepository) RecentPayments(ctx context.Context, userID uuid.UUID, limit int) ([]models.PensionPayment, error) {
	query := squirrel.Select(paymentColumns...).
		From("pension_payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("credited_date DESC").
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

	var payments []models.PensionPayment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// PaymentsPage returns one page of payment history, newest first.
func (r *PensionRepository) PaymentsPage(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PensionPayment, error) {
	query := squirrel.Select(paymentColumns...).
		From("pension_payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("credited_date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var payments []models.PensionPayment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *PensionRepository) CountPayments(ctx context.Context, userID uuid.UUID) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("pension_payments").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PensionRepository) CreatePayment(ctx context.Context, payment *models.PensionPayment) error {
	query := squirrel.Insert("pension_payments").
		Columns(paymentColumns...).
		Values(
			payment.ID, payment.PensionID, payment.UserID, payment.Amount,
			payment.CreditedDate, payment.MonthYear, payment.Status, payment.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
