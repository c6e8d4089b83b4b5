package repository

import (
	"context"
	"fmt"

	"github.com/lovematch/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type calculationRepository struct {
	db *sqlx.DB
}

func newCalculationRepository(db *sqlx.DB) *calculationRepository {
	return &calculationRepository{
		db: db,
	}
}

func (r *calculationRepository) Create(ctx context.Context, calculation *domain.Calculation) error {
	const query = `
	INSERT INTO love_calculation
	(id, pin, your_name, your_age, your_education, crush_name, crush_age, crush_education,
	 relationship_months, relationship_days, love_percentage, calculated_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		calculation.ID,
		calculation.Pin,
		calculation.YourName,
		calculation.YourAge,
		calculation.YourEducation,
		calculation.CrushName,
		calculation.CrushAge,
		calculation.CrushEducation,
		calculation.RelationshipMonths,
		calculation.RelationshipDays,
		calculation.LovePercentage,
		calculation.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("db insert calculation: %w", err)
	}

	return nil
}

func (r *calculationRepository) ListByPin(ctx context.Context, pin string, limit int) ([]domain.Calculation, error) {
	const query = `
	SELECT id, pin, your_name, your_age, your_education, crush_name, crush_age, crush_education,
	       relationship_months, relationship_days, love_percentage, calculated_at
	FROM love_calculation
	WHERE pin = ?
	ORDER BY calculated_at DESC
	LIMIT ?
	`

	calculations := make([]domain.Calculation, 0, limit)
	if err := r.db.SelectContext(ctx, &calculations, query, pin, limit); err != nil {
		return nil, fmt.Errorf("select calculations by pin failed: %w", err)
	}

	return calculations, nil
}

func (r *calculationRepository) DeleteByIDAndPin(ctx context.Context, id uuid.UUID, pin string) error {
	const query = `DELETE FROM love_calculation WHERE id = uuid_to_bin(?) AND pin = ?`

	res, err := r.db.ExecContext(ctx, query, id, pin)
	if err != nil {
		return fmt.Errorf("db delete calculation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete calculation rows: %w", err)
	}

	// Missing record and foreign-owned record are indistinguishable here,
	// which is exactly the signal the API exposes.
	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
