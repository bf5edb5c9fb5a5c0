package repository

import (
	"context"

	"github.com/jwalitptl/medtrack-api/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id int64) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type MedicationRepository interface {
	Create(ctx context.Context, medication *model.Medication) error
	Get(ctx context.Context, id int64) (*model.Medication, error)
	List(ctx context.Context) ([]*model.Medication, error)
	Update(ctx context.Context, medication *model.Medication) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	// Get returns one assignment with its patient and medication eager-loaded.
	Get(ctx context.Context, id int64) (*model.Assignment, error)
	// List returns all assignments with relations, most recently created first.
	List(ctx context.Context) ([]*model.Assignment, error)
	Update(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// ListByPatients returns the assignments of the given patients with each
	// assignment's medication eager-loaded.
	ListByPatients(ctx context.Context, patientIDs []int64) ([]*model.Assignment, error)
	// ListByMedications returns the assignments of the given medications with
	// each assignment's patient eager-loaded.
	ListByMedications(ctx context.Context, medicationIDs []int64) ([]*model.Assignment, error)
}
