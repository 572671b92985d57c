package handlers_test

import (
	"net/http"
	"testing"

	"teampulse-backend/internal/api/handlers"
	"teampulse-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health/live", handlers.NewHealthHandler(nil, nil).Live)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}
