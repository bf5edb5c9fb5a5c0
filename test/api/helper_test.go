package api_test

import (
	"fmt"
	"testing"
	"time"
)

// Helper function to generate unique names
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano())
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func createTestPatient(t *testing.T) int64 {
	t.Helper()

	resp := makeRequest("POST", "/patients", map[string]interface{}{
		"name":        uniqueName("Test Patient"),
		"dateOfBirth": "1990-01-01",
	})
	if !resp.IsSuccess() {
		t.Fatalf("Failed to create test patient: %s", resp.Message)
	}
	return resp.GetID()
}

func createTestMedication(t *testing.T) int64 {
	t.Helper()

	resp := makeRequest("POST", "/medications", map[string]interface{}{
		"name":      uniqueName("Test Medication"),
		"dosage":    "500mg",
		"frequency": "Twice daily",
	})
	if !resp.IsSuccess() {
		t.Fatalf("Failed to create test medication: %s", resp.Message)
	}
	return resp.GetID()
}

func createTestAssignment(t *testing.T, patientID, medicationID int64, startDate string, numberOfDays int) TestResponse {
	t.Helper()

	return makeRequest("POST", "/assignments", map[string]interface{}{
		"patientId":    patientID,
		"medicationId": medicationID,
		"startDate":    startDate,
		"numberOfDays": numberOfDays,
	})
}
