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

// MedicineRepository persists medicine schedules and intake logs. It
// also backs the adherence planner as its medication source.
type MedicineRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMedicineRepository(db *pgxpool.Pool, logger *zap.Logger) *MedicineRepository {
	return &MedicineRepository{
		db:     db,
		logger: logger,
	}
}

var medicineColumns = []string{
	"id", "user_id", "name", "dosage", "frequency", "times",
	"start_date", "end_date", "is_active", "created_at",
}

func scanMedicine(row pgxRow) (*models.Medicine, error) {
	var m models.Medicine
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.Times,
		&m.StartDate, &m.EndDate, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

var medicineLogColumns = []string{
	"id", "medicine_id", "user_id", "scheduled_time", "taken_at", "status", "created_at",
}

func scanMedicineLog(row pgxRow) (models.MedicineLog, error) {
	var l models.MedicineLog
	err := row.Scan(
		&l.ID, &l.MedicineID, &l.UserID, &l.ScheduledTime, &l.TakenAt,
		&l.Status, &l.CreatedAt,
	)
	return l, err
}

func (r *MedicineRepository) Create(ctx context.Context, med *models.Medicine) error {
	query := squirrel.Insert("medicines").
		Columns(medicineColumns...).
		Values(
			med.ID, med.UserID, med.Name, med.Dosage, med.Frequency,
			med.Times, med.StartDate, med.EndDate, med.IsActive, med.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *MedicineRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Medicine, error) {
	query := squirrel.Select(medicineColumns...).
		From("medicines").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
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

	var meds []*models.Medicine
	for rows.Next() {
		med, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, med)
	}
	return meds, rows.Err()
}

func (r *MedicineRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Medicine, error) {
	query := squirrel.Select(medicineColumns...).
		From("medicines").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanMedicine(r.db.QueryRow(ctx, sql, args...))
}

func (r *MedicineRepository) CreateLog(ctx context.Context, log *models.MedicineLog) error {
	query := squirrel.Insert("medicine_logs").
		Columns(medicineLogColumns...).
		Values(
			log.ID, log.MedicineID, log.UserID, log.ScheduledTime,
			log.TakenAt, log.Status, log.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// LogsSince returns all intake logs recorded after since.
func (r *MedicineRepository) LogsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MedicineLog, error) {
	query := squirrel.Select(medicineLogColumns...).
		From("medicine_logs").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Gt{"scheduled_time": since}).
		OrderBy("scheduled_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryLogs(ctx, query)
}

// MissedSince returns missed logs recorded after since, most recent
// first. A limit of 0 means no limit.
func (r *MedicineRepository) MissedSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]models.MedicineLog, error) {
	query := squirrel.Select(medicineLogColumns...).
		From("medicine_logs").
		Where(squirrel.Eq{"user_id": userID, "status": models.IntakeMissed}).
		Where(squirrel.Gt{"scheduled_time": since}).
		OrderBy("scheduled_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return r.queryLogs(ctx, query)
}

// ActiveMedicines returns the user's active medicine schedule.
func (r *MedicineRepository) ActiveMedicines(ctx context.Context, userID uuid.UUID) ([]models.Medicine, error) {
	query := squirrel.Select(medicineColumns...).
		From("medicines").
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at ASC").
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

	var meds []models.Medicine
	for rows.Next() {
		med, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, *med)
	}
	return meds, rows.Err()
}

func (r *MedicineRepository) queryLogs(ctx context.Context, query squirrel.SelectBuilder) ([]models.MedicineLog, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.MedicineLog
	for rows.Next() {
		log, err := scanMedicineLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
