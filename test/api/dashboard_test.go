package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	patientID := createTestPatient(t)
	medicationID := createTestMedication(t)

	createResp := createTestAssignment(t, patientID, medicationID, today(), 30)
	require.True(t, createResp.IsSuccess(), createResp.Message)

	resp := makeRequest("GET", "/dashboard", nil)
	require.True(t, resp.IsSuccess())

	assert.GreaterOrEqual(t, resp.GetInt("patients"), int64(1))
	assert.GreaterOrEqual(t, resp.GetInt("medications"), int64(1))
	assert.GreaterOrEqual(t, resp.GetInt("assignments"), int64(1))
	assert.GreaterOrEqual(t, resp.GetInt("activeTreatments"), int64(1))
}
