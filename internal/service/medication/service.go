package medication

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/medtrack-api/internal/model"
	"github.com/jwalitptl/medtrack-api/internal/repository"
)

const (
	catalogCacheKey = "medications:catalog"
	catalogCacheTTL = 30 * time.Second
)

type Service struct {
	repo           repository.MedicationRepository
	assignmentRepo repository.AssignmentRepository
	catalog        *cache.Cache
	now            func() time.Time
}

func NewService(repo repository.MedicationRepository, assignmentRepo repository.AssignmentRepository) *Service {
	return &Service{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		catalog:        cache.New(catalogCacheTTL, time.Minute),
		now:            time.Now,
	}
}

func (s *Service) Create(ctx context.Context, medication *model.Medication) (*model.Medication, error) {
	if err := s.repo.Create(ctx, medication); err != nil {
		return nil, err
	}
	s.catalog.Delete(catalogCacheKey)
	return medication, nil
}

// Get returns the medication with its assignments eager-loaded, each
// carrying its patient and a freshly derived remaining-days count.
func (s *Service) Get(ctx context.Context, id int64) (*model.Medication, error) {
	medication, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByMedications(ctx, []int64{id})
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
	medication.Assignments = assignments
	return medication, nil
}

// List serves the bare catalog, without relations. Reads dominate writes
// here, so the result is held in an in-process cache that every write path
// invalidates.
func (s *Service) List(ctx context.Context) ([]*model.Medication, error) {
	if cached, ok := s.catalog.Get(catalogCacheKey); ok {
		return cached.([]*model.Medication), nil
	}

	medications, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, medication := range medications {
		if medication.Assignments == nil {
			medication.Assignments = []*model.Assignment{}
		}
	}

	s.catalog.Set(catalogCacheKey, medications, cache.DefaultExpiration)
	return medications, nil
}

func (s *Service) Update(ctx context.Context, id int64, name, dosage, frequency *string) (*model.Medication, error) {
	medication, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		medication.Name = *name
	}
	if dosage != nil {
		medication.Dosage = *dosage
	}
	if frequency != nil {
		medication.Frequency = *frequency
	}

	if err := s.repo.Update(ctx, medication); err != nil {
		return nil, err
	}
	s.catalog.Delete(catalogCacheKey)
	return medication, nil
}

// Delete removes the medication; the store cascades the delete to every
// assignment referencing it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Delete(catalogCacheKey)
	return nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
