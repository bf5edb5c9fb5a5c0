package medication

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medtrack-api/internal/model"
	apperrors "github.com/jwalitptl/medtrack-api/pkg/errors"
)

var testNow = time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)

type fakeMedicationRepo struct {
	medications map[int64]*model.Medication
	nextID      int64
	listCalls   int
}

func newFakeMedicationRepo() *fakeMedicationRepo {
	return &fakeMedicationRepo{medications: make(map[int64]*model.Medication), nextID: 1}
}

func (r *fakeMedicationRepo) Create(ctx context.Context, m *model.Medication) error {
	m.ID = r.nextID
	r.nextID++
	stored := *m
	r.medications[m.ID] = &stored
	return nil
}

func (r *fakeMedicationRepo) Get(ctx context.Context, id int64) (*model.Medication, error) {
	m, ok := r.medications[id]
	if !ok {
		return nil, apperrors.NotFound("Medication", id)
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMedicationRepo) List(ctx context.Context) ([]*model.Medication, error) {
	r.listCalls++
	result := make([]*model.Medication, 0, len(r.medications))
	for id := r.nextID - 1; id >= 1; id-- {
		if m, ok := r.medications[id]; ok {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeMedicationRepo) Update(ctx context.Context, m *model.Medication) error {
	if _, ok := r.medications[m.ID]; !ok {
		return apperrors.NotFound("Medication", m.ID)
	}
	stored := *m
	r.medications[m.ID] = &stored
	return nil
}

func (r *fakeMedicationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.medications[id]; !ok {
		return apperrors.NotFound("Medication", id)
	}
	delete(r.medications, id)
	return nil
}

func (r *fakeMedicationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.medications)), nil
}

type fakeAssignmentRepo struct {
	byMedication map[int64][]*model.Assignment
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, a *model.Assignment) error { return nil }
func (r *fakeAssignmentRepo) Get(ctx context.Context, id int64) (*model.Assignment, error) {
	return nil, apperrors.NotFound("Assignment", id)
}
func (r *fakeAssignmentRepo) List(ctx context.Context) ([]*model.Assignment, error) { return nil, nil }
func (r *fakeAssignmentRepo) Update(ctx context.Context, a *model.Assignment) error { return nil }
func (r *fakeAssignmentRepo) Delete(ctx context.Context, id int64) error            { return nil }
func (r *fakeAssignmentRepo) Count(ctx context.Context) (int64, error)              { return 0, nil }

func (r *fakeAssignmentRepo) ListByPatients(ctx context.Context, ids []int64) ([]*model.Assignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) ListByMedications(ctx context.Context, ids []int64) ([]*model.Assignment, error) {
	result := []*model.Assignment{}
	for _, id := range ids {
		for _, a := range r.byMedication[id] {
			copied := *a
			result = append(result, &copied)
		}
	}
	return result, nil
}

func newTestService(assignments map[int64][]*model.Assignment) (*Service, *fakeMedicationRepo) {
	repo := newFakeMedicationRepo()
	svc := NewService(repo, &fakeAssignmentRepo{byMedication: assignments})
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestGetEagerLoadsAssignmentsWithRemainingDays(t *testing.T) {
	assignments := map[int64][]*model.Assignment{
		1: {
			{
				Base:         model.Base{ID: 10},
				PatientID:    3,
				MedicationID: 1,
				StartDate:    model.NewDate(testNow.AddDate(0, 0, -7)),
				NumberOfDays: 7,
				Patient:      &model.Patient{Base: model.Base{ID: 3}, Name: "Jane Roe"},
			},
		},
	}
	svc, repo := newTestService(assignments)
	require.NoError(t, repo.Create(context.Background(), &model.Medication{Name: "Ibuprofen", Dosage: "200mg", Frequency: "As needed"}))

	medication, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, medication.Assignments, 1)

	a := medication.Assignments[0]
	require.NotNil(t, a.RemainingDays)
	assert.Equal(t, 0, *a.RemainingDays, "course ending today reports zero")
	require.NotNil(t, a.Patient)
	assert.Equal(t, "Jane Roe", a.Patient.Name)
}

func TestListServesCatalogFromCache(t *testing.T) {
	svc, repo := newTestService(nil)
	require.NoError(t, repo.Create(context.Background(), &model.Medication{Name: "Ibuprofen", Dosage: "200mg", Frequency: "As needed"}))

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.listCalls)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second read must hit the cache")
}

func TestWritesInvalidateCatalogCache(t *testing.T) {
	svc, repo := newTestService(nil)
	require.NoError(t, repo.Create(context.Background(), &model.Medication{Name: "Ibuprofen", Dosage: "200mg", Frequency: "As needed"}))

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.Medication{Name: "Paracetamol", Dosage: "500mg", Frequency: "Twice daily"})
	require.NoError(t, err)

	medications, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, medications, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestUpdateMergesPresentFieldsOnly(t *testing.T) {
	svc, repo := newTestService(nil)
	require.NoError(t, repo.Create(context.Background(), &model.Medication{Name: "Ibuprofen", Dosage: "200mg", Frequency: "As needed"}))

	dosage := "400mg"
	updated, err := svc.Update(context.Background(), 1, nil, &dosage, nil)
	require.NoError(t, err)

	assert.Equal(t, "Ibuprofen", updated.Name)
	assert.Equal(t, "400mg", updated.Dosage)
	assert.Equal(t, "As needed", updated.Frequency)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	err := svc.Delete(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}
