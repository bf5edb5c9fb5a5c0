package patient

import (
	"context"
	"time"

	"github.com/jwalitptl/medtrack-api/internal/model"
	"github.com/jwalitptl/medtrack-api/internal/repository"
)

type Service struct {
	repo           repository.PatientRepository
	assignmentRepo repository.AssignmentRepository
	now            func() time.Time
}

func NewService(repo repository.PatientRepository, assignmentRepo repository.AssignmentRepository) *Service {
	return &Service{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		now:            time.Now,
	}
}

func (s *Service) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Get returns the patient with its assignments eager-loaded, each carrying
// its medication and a freshly derived remaining-days count.
func (s *Service) Get(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByPatients(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []*model.Assignment{}
	}

	now := s.now()
	for _, assignment := range assignments {
		assignment.AttachRemainingDays(now)
	}
	patient.Assignments = assignments
	return patient, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return patients, nil
	}

	ids := make([]int64, 0, len(patients))
	for _, patient := range patients {
		ids = append(ids, patient.ID)
	}

	assignments, err := s.assignmentRepo.ListByPatients(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	byPatient := make(map[int64][]*model.Assignment, len(patients))
	for _, assignment := range assignments {
		assignment.AttachRemainingDays(now)
		byPatient[assignment.PatientID] = append(byPatient[assignment.PatientID], assignment)
	}

	for _, patient := range patients {
		patient.Assignments = byPatient[patient.ID]
		if patient.Assignments == nil {
			patient.Assignments = []*model.Assignment{}
		}
	}
	return patients, nil
}

func (s *Service) Update(ctx context.Context, id int64, name *string, dateOfBirth *model.Date) (*model.Patient, error) {
	patient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		patient.Name = *name
	}
	if dateOfBirth != nil {
		patient.DateOfBirth = *dateOfBirth
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete removes the patient; the store cascades the delete to every
// assignment referencing it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
