package model

// DashboardStats summarizes the store for the dashboard view. Treatment
// counts are derived from remaining days at the moment of the request.
type DashboardStats struct {
	Patients            int64 `json:"patients"`
	Medications         int64 `json:"medications"`
	Assignments         int64 `json:"assignments"`
	ActiveTreatments    int   `json:"activeTreatments"`
	EndingToday         int   `json:"endingToday"`
	CompletedTreatments int   `json:"completedTreatments"`
}
