package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "name", Message: "is required"}}
	p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/bad-request"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	p := BadRequest("invalid")
	p.Write(resp)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Title != "Bad Request" || decoded.Detail != "invalid" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestConstructorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		problem    *Problem
		wantStatus int
		wantType   string
	}{
		{"not found", NotFound("gone"), http.StatusNotFound, BaseURI + "/not-found"},
		{"conflict", Conflict("taken"), http.StatusConflict, BaseURI + "/conflict"},
		{"validation", ValidationError("bad fields", nil), http.StatusUnprocessableEntity, BaseURI + "/validation-error"},
		{"internal", InternalError("boom"), http.StatusInternalServerError, BaseURI + "/internal-error"},
		{"service unavailable", ServiceUnavailable("down"), http.StatusServiceUnavailable, BaseURI + "/service-unavailable"},
		{"bad gateway", BadGateway("upstream"), http.StatusBadGateway, BaseURI + "/bad-gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.problem.Status != tt.wantStatus {
				t.Errorf("unexpected status: got %d want %d", tt.problem.Status, tt.wantStatus)
			}
			if tt.problem.Type != tt.wantType {
				t.Errorf("unexpected type: got %q want %q", tt.problem.Type, tt.wantType)
			}
		})
	}
}
