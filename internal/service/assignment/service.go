package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/medtrack-api/internal/model"
	"github.com/jwalitptl/medtrack-api/internal/repository"
	apperrors "github.com/jwalitptl/medtrack-api/pkg/errors"
)

// Service orchestrates the assignment workflow: cross-entity reference
// validation on create, remaining-days derivation on every read, and
// partial updates limited to the treatment window.
type Service struct {
	repo           repository.AssignmentRepository
	patientRepo    repository.PatientRepository
	medicationRepo repository.MedicationRepository
	now            func() time.Time
}

func NewService(repo repository.AssignmentRepository, patientRepo repository.PatientRepository, medicationRepo repository.MedicationRepository) *Service {
	return &Service{
		repo:           repo,
		patientRepo:    patientRepo,
		medicationRepo: medicationRepo,
		now:            time.Now,
	}
}

// Create verifies both references resolve before persisting. A missing
// reference is a client error naming the missing id, and nothing is
// persisted in that case.
func (s *Service) Create(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error) {
	if _, err := s.patientRepo.Get(ctx, assignment.PatientID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.BadRequest(fmt.Sprintf("Patient with ID %d not found", assignment.PatientID), nil)
		}
		return nil, fmt.Errorf("failed to verify patient: %w", err)
	}

	if _, err := s.medicationRepo.Get(ctx, assignment.MedicationID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.BadRequest(fmt.Sprintf("Medication with ID %d not found", assignment.MedicationID), nil)
		}
		return nil, fmt.Errorf("failed to verify medication: %w", err)
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	assignment.AttachRemainingDays(s.now())
	return assignment, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Assignment, error) {
	assignment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assignment.AttachRemainingDays(s.now())
	return assignment, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Assignment, error) {
	assignments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, assignment := range assignments {
		assignment.AttachRemainingDays(now)
	}
	return assignments, nil
}

// Update merges only the fields present in the partial input. The patient
// and medication references are not part of the update contract and stay
// untouched no matter what the payload contained.
func (s *Service) Update(ctx context.Context, id int64, startDate *model.Date, numberOfDays *int) (*model.Assignment, error) {
	assignment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if startDate != nil {
		assignment.StartDate = *startDate
	}
	if numberOfDays != nil {
		assignment.NumberOfDays = *numberOfDays
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	assignment.AttachRemainingDays(s.now())
	return assignment, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
