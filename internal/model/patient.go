package model

type Patient struct {
	Base
	Name        string        `db:"name" json:"name"`
	DateOfBirth Date          `db:"date_of_birth" json:"dateOfBirth"`
	Assignments []*Assignment `db:"-" json:"assignments"`
}

type CreatePatientRequest struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,dateonly"`
}

type UpdatePatientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,dateonly"`
}
