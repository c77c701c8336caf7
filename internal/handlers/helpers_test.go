package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HammerMeetNail/syncin/internal/testutil"
)

// decodeError checks status and content type, then returns the decoded
// error body so callers can inspect details.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder, status int) ErrorResponse {
	t.Helper()
	testutil.AssertStatusCode(t, rr, status)
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON error body, got content type %q", ct)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error body %q: %v", rr.Body.String(), err)
	}
	return resp
}

func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if resp := decodeError(t, rr, status); resp.Error != message {
		t.Fatalf("expected error %q, got %q", message, resp.Error)
	}
}
