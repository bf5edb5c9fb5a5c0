package model

type Medication struct {
	Base
	Name        string        `db:"name" json:"name"`
	Dosage      string        `db:"dosage" json:"dosage"`
	Frequency   string        `db:"frequency" json:"frequency"`
	Assignments []*Assignment `db:"-" json:"assignments"`
}

type CreateMedicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
}

type UpdateMedicationRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Dosage    *string `json:"dosage" binding:"omitempty,min=1"`
	Frequency *string `json:"frequency" binding:"omitempty,min=1"`
}
