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

type HelpRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHelpRepository(db *pgxpool.Pool, logger *zap.Logger) *HelpRepository {
	return &HelpRepository{
		db:     db,
		logger: logger,
	}
}

var helpColumns = []string{
	"hr.id", "hr.user_id", "hr.category", "hr.description", "hr.urgency", "hr.status",
	"hr.assigned_volunteer_id", "hr.location", "hr.resolved_at", "hr.created_at",
	"hr.updated_at", "COALESCE(u.name, '')",
}

func scanHelpRequest(row pgxRow) (*models.HelpRequest, error) {
	var h models.HelpRequest
	err := row.Scan(
		&h.ID, &h.UserID, &h.Category, &h.Description, &h.Urgency,
		&h.Status, &h.AssignedVolunteerID, &h.Location, &h.ResolvedAt,
		&h.CreatedAt, &h.UpdatedAt, &h.VolunteerName,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HelpRepository) Create(ctx context.Context, req *models.HelpRequest) error {
	query := squirrel.Insert("help_requests").
		Columns(
			"id", "user_id", "category", "description", "urgency", "status",
			"assigned_volunteer_id", "location", "resolved_at", "created_at", "updated_at",
		).
		Values(
			req.ID, req.UserID, req.Category, req.Description, req.Urgency,
			req.Status, req.AssignedVolunteerID, req.Location, req.ResolvedAt,
			req.CreatedAt, req.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HelpRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.HelpRequest, error) {
	query := squirrel.Select(helpColumns...).
		From("help_requests hr").
		LeftJoin("users u ON u.id = hr.assigned_volunteer_id").
		Where(squirrel.Eq{"hr.user_id": userID}).
		OrderBy("hr.created_at DESC").
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

	var requests []*models.HelpRequest
	for rows.Next() {
		req, err := scanHelpRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// GetByID returns a request visible to the caller, either as its owner
// or as the assigned volunteer.
func (r *HelpRepository) GetByID(ctx context.Context, id, callerID uuid.UUID) (*models.HelpRequest, error) {
	query := squirrel.Select(helpColumns...).
		From("help_requests hr").
		LeftJoin("users u ON u.id = hr.assigned_volunteer_id").
		Where(squirrel.Eq{"hr.id": id}).
		Where(squirrel.Or{
			squirrel.Eq{"hr.user_id": callerID},
			squirrel.Eq{"hr.assigned_volunteer_id": callerID},
		}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanHelpRequest(r.db.QueryRow(ctx, sql, args...))
}

func (r *HelpRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.HelpStatus, resolvedAt *time.Time) error {
	query := squirrel.Update("help_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if resolvedAt != nil {
		query = query.Set("resolved_at", resolvedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HelpRepository) AssignVolunteer(ctx context.Context, id, volunteerID uuid.UUID) error {
	query := squirrel.Update("help_requests").
		Set("assigned_volunteer_id", volunteerID).
		Set("status", models.HelpAssigned).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// BestAvailableVolunteer picks the highest-rated available volunteer in
// the requester's district.
func (r *HelpRepository) BestAvailableVolunteer(ctx context.Context, district string) (*models.Volunteer, error) {
	query := squirrel.Select("v.user_id", "u.name", "v.district", "v.is_available", "v.rating", "v.total_helps").
		From("volunteers v").
		Join("users u ON u.id = v.user_id").
		Where(squirrel.Eq{"v.is_available": true, "v.district": district}).
		OrderBy("v.rating DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var v models.Volunteer
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&v.UserID, &v.Name, &v.District, &v.IsAvailable, &v.Rating, &v.TotalHelps,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *HelpRepository) IncrementHelps(ctx context.Context, volunteerID uuid.UUID) error {
	query := squirrel.Update("volunteers").
		Set("total_helps", squirrel.Expr("total_helps + 1")).
		Where(squirrel.Eq{"user_id": volunteerID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
