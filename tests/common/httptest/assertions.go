//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// errorBody mirrors httperr.Response on the wire.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertErrorDetail checks the detail text that client errors echo back.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedDetail string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	detail, _ := body.Detail.(string)
	assert.Contains(t, detail, expectedDetail, "Response error detail doesn't contain expected text")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body errorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	return body
}
