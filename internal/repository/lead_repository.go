package repository

import (
	"context"

	"credimatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LeadRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLeadRepository(db *pgxpool.Pool, logger *zap.Logger) *LeadRepository {
	return &LeadRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := squirrel.Insert("leads").
		Columns("id", "profile_id", "offer_id", "full_name", "phone", "email", "entity", "product", "rate", "amount", "created_at").
		Values(lead.ID, lead.ProfileID, lead.OfferID, lead.FullName, lead.Phone, lead.Email, lead.Entity, lead.Product, lead.Rate, lead.Amount, lead.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LeadRepository) ListByProfile(ctx context.Context, profileID string) ([]*models.Lead, error) {
	query := squirrel.Select("id", "profile_id", "offer_id", "full_name", "phone", "email", "entity", "product", "rate", "amount", "created_at").
		From("leads").
		Where(squirrel.Eq{"profile_id": profileID}).
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

	var leads []*models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.OfferID, &l.FullName, &l.Phone, &l.Email, &l.Entity, &l.Product, &l.Rate, &l.Amount, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, &l)
	}

	return leads, rows.Err()
}
