package api_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientFlow(t *testing.T) {
	name := uniqueName("Test Patient")

	createResp := makeRequest("POST", "/patients", map[string]interface{}{
		"name":        name,
		"dateOfBirth": "1985-03-20",
	})
	require.True(t, createResp.IsSuccess(), createResp.Message)
	assert.Equal(t, 201, createResp.StatusCode)
	patientID := createResp.GetID()
	require.NotZero(t, patientID)

	getResp := makeRequest("GET", fmt.Sprintf("/patients/%d", patientID), nil)
	require.True(t, getResp.IsSuccess())
	assert.Equal(t, name, getResp.Data["name"])
	assert.Equal(t, "1985-03-20", getResp.GetString("dateOfBirth"))

	// A fresh patient carries an empty assignment list, not null.
	assignments, ok := getResp.Data["assignments"].([]interface{})
	require.True(t, ok, "assignments must be a JSON array")
	assert.Empty(t, assignments)

	newName := uniqueName("Renamed Patient")
	patchResp := makeRequest("PATCH", fmt.Sprintf("/patients/%d", patientID), map[string]interface{}{
		"name": newName,
	})
	require.True(t, patchResp.IsSuccess())
	assert.Equal(t, newName, patchResp.Data["name"])
	assert.Equal(t, "1985-03-20", patchResp.GetString("dateOfBirth"), "untouched fields survive a partial update")

	listResp := makeRequest("GET", "/patients", nil)
	require.True(t, listResp.IsSuccess())
	assert.NotEmpty(t, listResp.List)

	deleteResp := makeRequest("DELETE", fmt.Sprintf("/patients/%d", patientID), nil)
	require.True(t, deleteResp.IsSuccess())

	getResp = makeRequest("GET", fmt.Sprintf("/patients/%d", patientID), nil)
	assert.Equal(t, 404, getResp.StatusCode)
}

func TestPatientValidation(t *testing.T) {
	resp := makeRequest("POST", "/patients", map[string]interface{}{
		"name": uniqueName("No Birthday"),
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp = makeRequest("POST", "/patients", map[string]interface{}{
		"name":        uniqueName("Bad Birthday"),
		"dateOfBirth": "20-03-1985",
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPatientNotFound(t *testing.T) {
	resp := makeRequest("GET", "/patients/99999999", nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp = makeRequest("DELETE", "/patients/99999999", nil)
	assert.Equal(t, 404, resp.StatusCode)
}
