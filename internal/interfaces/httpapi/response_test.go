package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeDTO {
	t.Helper()
	var body envelopeDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.APIVersion != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %q", body.APIVersion)
	}
	return body
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := decodeEnvelope(t, rec)
	if body.Data == nil || body.Error != nil {
		t.Fatalf("expected data only, got %+v", body)
	}
}

func TestWriteError_Classes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		status string
		reason string
	}{
		{"invalid input", fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), 400, "INVALID_ARGUMENT", "invalidInput"},
		{"not found", fmt.Errorf("%w: player=7", usecase.ErrNotFound), 404, "NOT_FOUND", "notFound"},
		{"duplicate", crerr.Mark(crerr.New("name taken"), usecase.ErrDuplicateEntity), 409, "ALREADY_EXISTS", "duplicate"},
		{"reference", crerr.Mark(crerr.New("unknown match"), usecase.ErrReferenceViolation), 422, "FAILED_PRECONDITION", "referenceViolation"},
		{"persistence", crerr.Mark(crerr.New("disk full"), usecase.ErrPersistence), 500, "INTERNAL", "internalError"},
		{"unclassified", crerr.New("boom"), 500, "INTERNAL", "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.code {
				t.Fatalf("status=%d want=%d", rec.Code, tt.code)
			}
			body := decodeEnvelope(t, rec)
			if body.Error == nil || body.Error.Code != tt.code || body.Error.Status != tt.status {
				t.Fatalf("unexpected error body %+v", body.Error)
			}
			if len(body.Error.Errors) != 1 || body.Error.Errors[0].Reason != tt.reason || body.Error.Errors[0].Domain != errorDomain {
				t.Fatalf("unexpected error items %+v", body.Error.Errors)
			}
			if body.Error.Message != tt.err.Error() {
				t.Fatalf("message=%q want=%q", body.Error.Message, tt.err.Error())
			}
		})
	}
}

func TestWriteInternalError_HidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(context.Background(), rec)

	body := decodeEnvelope(t, rec)
	if rec.Code != http.StatusInternalServerError || body.Error.Message != "internal server error" {
		t.Fatalf("unexpected internal error response: %d %+v", rec.Code, body.Error)
	}
}

func TestWriteCreated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/adicionar_jogador", nil)
	rec := httptest.NewRecorder()
	writeCreated(context.Background(), rec, req, "Jogador adicionado com sucesso!", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/?flash=Jogador+adicionado+com+sucesso%21" {
		t.Fatalf("unexpected location %q", loc)
	}

	req.Header.Set("Accept", "text/html, Application/JSON")
	rec = httptest.NewRecorder()
	writeCreated(context.Background(), rec, req, "ignored", map[string]int{"id": 1})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
