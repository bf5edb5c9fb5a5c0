package model

import (
	"time"

	"github.com/jwalitptl/medtrack-api/pkg/dateutil"
)

// Assignment binds one patient to one medication for a fixed treatment
// window starting at StartDate and running NumberOfDays whole days.
type Assignment struct {
	Base
	StartDate    Date  `db:"start_date" json:"startDate"`
	NumberOfDays int   `db:"number_of_days" json:"numberOfDays"`
	PatientID    int64 `db:"patient_id" json:"patientId"`
	MedicationID int64 `db:"medication_id" json:"medicationId"`

	Patient    *Patient    `db:"patient" json:"patient,omitempty"`
	Medication *Medication `db:"medication" json:"medication,omitempty"`

	// RemainingDays is derived from the wall clock whenever the record is
	// served. It is never persisted and never part of equality.
	RemainingDays *int `db:"-" json:"remainingDays,omitempty"`
}

// AttachRemainingDays derives the remaining-days field relative to now.
// This is the single place derivation happens, regardless of which
// endpoint produced the record.
func (a *Assignment) AttachRemainingDays(now time.Time) {
	remaining := dateutil.RemainingDays(a.StartDate.Time, a.NumberOfDays, now)
	a.RemainingDays = &remaining
}

type CreateAssignmentRequest struct {
	PatientID    int64  `json:"patientId" binding:"required"`
	MedicationID int64  `json:"medicationId" binding:"required"`
	StartDate    string `json:"startDate" binding:"required,dateonly"`
	NumberOfDays int    `json:"numberOfDays" binding:"required,gt=0"`
}

// UpdateAssignmentRequest carries the only mutable assignment fields.
// Patient and medication references are not part of the update contract;
// a payload that submits them has those keys dropped at decode time.
type UpdateAssignmentRequest struct {
	StartDate    *string `json:"startDate" binding:"omitempty,dateonly"`
	NumberOfDays *int    `json:"numberOfDays" binding:"omitempty,gt=0"`
}
