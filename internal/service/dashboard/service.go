package dashboard

import (
	"context"
	"time"

	"github.com/jwalitptl/medtrack-api/internal/model"
	"github.com/jwalitptl/medtrack-api/internal/repository"
	"github.com/jwalitptl/medtrack-api/pkg/dateutil"
)

type Service struct {
	patientRepo    repository.PatientRepository
	medicationRepo repository.MedicationRepository
	assignmentRepo repository.AssignmentRepository
	now            func() time.Time
}

func NewService(patientRepo repository.PatientRepository, medicationRepo repository.MedicationRepository, assignmentRepo repository.AssignmentRepository) *Service {
	return &Service{
		patientRepo:    patientRepo,
		medicationRepo: medicationRepo,
		assignmentRepo: assignmentRepo,
		now:            time.Now,
	}
}

func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	var err error
	if stats.Patients, err = s.patientRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Medications, err = s.medicationRepo.Count(ctx); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Assignments = int64(len(assignments))

	now := s.now()
	for _, assignment := range assignments {
		switch remaining := dateutil.RemainingDays(assignment.StartDate.Time, assignment.NumberOfDays, now); {
		case remaining > 0:
			stats.ActiveTreatments++
		case remaining == 0:
			stats.EndingToday++
		default:
			stats.CompletedTreatments++
		}
	}
	return stats, nil
}
