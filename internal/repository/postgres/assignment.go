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

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `
	a.id, a.start_date, a.number_of_days, a.patient_id, a.medication_id,
	a.created_at, a.updated_at
`

const patientColumns = `
	p.id AS "patient.id", p.name AS "patient.name",
	p.date_of_birth AS "patient.date_of_birth",
	p.created_at AS "patient.created_at", p.updated_at AS "patient.updated_at"
`

const medicationColumns = `
	m.id AS "medication.id", m.name AS "medication.name",
	m.dosage AS "medication.dosage", m.frequency AS "medication.frequency",
	m.created_at AS "medication.created_at", m.updated_at AS "medication.updated_at"
`

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	query := `
		INSERT INTO assignments (start_date, number_of_days, patient_id, medication_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	assignment.CreatedAt = time.Now()
	assignment.UpdatedAt = assignment.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		assignment.StartDate,
		assignment.NumberOfDays,
		assignment.PatientID,
		assignment.MedicationID,
		assignment.CreatedAt,
		assignment.UpdatedAt,
	).Scan(&assignment.ID)
	if isForeignKeyViolation(err) {
		// Backstop behind the service-level existence checks: a referenced
		// row can disappear between check and insert.
		return apperrors.BadRequest("assignment references a missing patient or medication", err)
	}
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *assignmentRepository) Get(ctx context.Context, id int64) (*model.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `, ` + patientColumns + `, ` + medicationColumns + `
		FROM assignments a
		JOIN patients p ON p.id = a.patient_id
		JOIN medications m ON m.id = a.medication_id
		WHERE a.id = $1
	`
	var assignment model.Assignment
	err := r.db.GetContext(ctx, &assignment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Assignment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

func (r *assignmentRepository) List(ctx context.Context) ([]*model.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `, ` + patientColumns + `, ` + medicationColumns + `
		FROM assignments a
		JOIN patients p ON p.id = a.patient_id
		JOIN medications m ON m.id = a.medication_id
		ORDER BY a.created_at DESC
	`
	assignments := []*model.Assignment{}
	if err := r.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *model.Assignment) error {
	query := `UPDATE assignments SET start_date = $1, number_of_days = $2, updated_at = $3 WHERE id = $4`
	assignment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		assignment.StartDate,
		assignment.NumberOfDays,
		assignment.UpdatedAt,
		assignment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return requireRowsAffected(result, "Assignment", assignment.ID)
}

func (r *assignmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM assignments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return requireRowsAffected(result, "Assignment", id)
}

func (r *assignmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM assignments`); err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

func (r *assignmentRepository) ListByPatients(ctx context.Context, patientIDs []int64) ([]*model.Assignment, error) {
	if len(patientIDs) == 0 {
		return []*model.Assignment{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+assignmentColumns+`, `+medicationColumns+`
		FROM assignments a
		JOIN medications m ON m.id = a.medication_id
		WHERE a.patient_id IN (?)
		ORDER BY a.created_at DESC
	`, patientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment query: %w", err)
	}

	assignments := []*model.Assignment{}
	if err := r.db.SelectContext(ctx, &assignments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list patient assignments: %w", err)
	}
	return assignments, nil
}

func (r *assignmentRepository) ListByMedications(ctx context.Context, medicationIDs []int64) ([]*model.Assignment, error) {
	if len(medicationIDs) == 0 {
		return []*model.Assignment{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+assignmentColumns+`, `+patientColumns+`
		FROM assignments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.medication_id IN (?)
		ORDER BY a.created_at DESC
	`, medicationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment query: %w", err)
	}

	assignments := []*model.Assignment{}
	if err := r.db.SelectContext(ctx, &assignments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list medication assignments: %w", err)
	}
	return assignments, nil
}
