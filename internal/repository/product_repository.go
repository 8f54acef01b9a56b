package repository

import (
	"context"

	"credimatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProductRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProductRepository(db *pgxpool.Pool, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

var productColumns = []string{
	"id", "entity_id", "name", "type",
	"min_age", "max_age", "min_income", "min_work_months", "min_credit_score", "max_debt_to_income", "required_documents",
	"amount_min", "amount_max", "term_min_months", "term_max_months", "down_payment_pct", "rate_min", "rate_max",
	"created_at", "updated_at",
}

func (r *ProductRepository) CreateEntity(ctx context.Context, entity *models.FinancialEntity) error {
	query := squirrel.Insert("entities").
		Columns("id", "code", "name", "created_at").
		Values(entity.ID, entity.Code, entity.Name, entity.CreatedAt).
		Suffix("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ProductRepository) CreateProduct(ctx context.Context, prod *models.FinancialProduct) error {
	docs := make([]string, 0, len(prod.Requirements.RequiredDocuments))
	for _, d := range prod.Requirements.RequiredDocuments {
		docs = append(docs, string(d))
	}

	query := squirrel.Insert("products").
		Columns(productColumns...).
		Values(
			prod.ID, prod.EntityID, prod.Name, prod.Type,
			prod.Requirements.MinAge, prod.Requirements.MaxAge, prod.Requirements.MinIncome,
			prod.Requirements.MinWorkMonths, prod.Requirements.MinCreditScore, prod.Requirements.MaxDebtToIncome, docs,
			prod.Conditions.Amount.Min, prod.Conditions.Amount.Max,
			prod.Conditions.Term.MinMonths, prod.Conditions.Term.MaxMonths,
			prod.Conditions.DownPaymentPct, prod.Conditions.Rate.Min, prod.Conditions.Rate.Max,
			prod.CreatedAt, prod.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET rate_min = EXCLUDED.rate_min, rate_max = EXCLUDED.rate_max, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListEntities returns every entity with its products attached, ready for a
// matching run.
func (r *ProductRepository) ListEntities(ctx context.Context) ([]models.FinancialEntity, error) {
	query := squirrel.Select("id", "code", "name", "created_at").
		From("entities").
		OrderBy("name").
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

	var entities []models.FinancialEntity
	for rows.Next() {
		var e models.FinancialEntity
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.CreatedAt); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entities {
		products, err := r.productsByEntity(ctx, &entities[i])
		if err != nil {
			return nil, err
		}
		entities[i].Products = products
	}

	return entities, nil
}

func (r *ProductRepository) productsByEntity(ctx context.Context, entity *models.FinancialEntity) ([]models.FinancialProduct, error) {
	query := squirrel.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"entity_id": entity.ID}).
		OrderBy("name").
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

	var products []models.FinancialProduct
	for rows.Next() {
		var p models.FinancialProduct
		var docs []string
		if err := rows.Scan(
			&p.ID, &p.EntityID, &p.Name, &p.Type,
			&p.Requirements.MinAge, &p.Requirements.MaxAge, &p.Requirements.MinIncome,
			&p.Requirements.MinWorkMonths, &p.Requirements.MinCreditScore, &p.Requirements.MaxDebtToIncome, &docs,
			&p.Conditions.Amount.Min, &p.Conditions.Amount.Max,
			&p.Conditions.Term.MinMonths, &p.Conditions.Term.MaxMonths,
			&p.Conditions.DownPaymentPct, &p.Conditions.Rate.Min, &p.Conditions.Rate.Max,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		for _, d := range docs {
			p.Requirements.RequiredDocuments = append(p.Requirements.RequiredDocuments, models.DocumentType(d))
		}
		p.EntityName = entity.Name
		p.Source = models.SourceCatalog
		products = append(products, p)
	}

	return products, rows.Err()
}
