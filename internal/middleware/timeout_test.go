package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutPassesFastRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Timeout(TimeoutConfig{Duration: time.Second}))
	engine.GET("/fast", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeoutSendsGatewayTimeoutAndDropsLateWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Timeout(TimeoutConfig{Duration: 20 * time.Millisecond}))

	release := make(chan struct{})
	handlerDone := make(chan struct{})
	engine.GET("/slow", func(c *gin.Context) {
		defer close(handlerDone)
		<-release
		c.JSON(http.StatusOK, gin.H{"status": "too late"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
	assert.Equal(t, "request timeout", resp.Message)

	// Let the handler finish after the deadline response went out; its
	// write must not reach the response.
	body := w.Body.String()
	close(release)
	<-handlerDone
	assert.Equal(t, body, w.Body.String())
}
