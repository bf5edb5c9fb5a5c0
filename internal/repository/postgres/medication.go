package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/medtrack-api/internal/model"
	"github.com/jwalitptl/medtrack-api/internal/repository"
	apperrors "github.com/jwalitptl/medtrack-api/pkg/errors"
)

type medicationRepository struct {
	db *sqlx.DB
}

func NewMedicationRepository(db *sqlx.DB) repository.MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) error {
	query := `
		INSERT INTO medications (name, dosage, frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	medication.CreatedAt = time.Now()
	medication.UpdatedAt = medication.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		medication.Name,
		medication.Dosage,
		medication.Frequency,
		medication.CreatedAt,
		medication.UpdatedAt,
	).Scan(&medication.ID)
	if err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}
	return nil
}

func (r *medicationRepository) Get(ctx context.Context, id int64) (*model.Medication, error) {
	query := `SELECT * FROM medications WHERE id = $1`
	var medication model.Medication
	err := r.db.GetContext(ctx, &medication, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Medication", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}
	return &medication, nil
}

func (r *medicationRepository) List(ctx context.Context) ([]*model.Medication, error) {
	query := `SELECT * FROM medications ORDER BY created_at DESC`
	medications := []*model.Medication{}
	if err := r.db.SelectContext(ctx, &medications, query); err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return medications, nil
}

func (r *medicationRepository) Update(ctx context.Context, medication *model.Medication) error {
	query := `UPDATE medications SET name = $1, dosage = $2, frequency = $3, updated_at = $4 WHERE id = $5`
	medication.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		medication.Name,
		medication.Dosage,
		medication.Frequency,
		medication.UpdatedAt,
		medication.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}
	return requireRowsAffected(result, "Medication", medication.ID)
}

func (r *medicationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM medications WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return requireRowsAffected(result, "Medication", id)
}

func (r *medicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM medications`); err != nil {
		return 0, fmt.Errorf("failed to count medications: %w", err)
	}
	return count, nil
}
