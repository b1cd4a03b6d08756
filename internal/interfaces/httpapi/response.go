package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "football-manager"
)

// envelope follows the Google JSON style guide: data on success, error otherwise.
type envelopeDTO struct {
	APIVersion string        `json:"apiVersion"`
	Data       any           `json:"data,omitempty"`
	Error      *errorBodyDTO `json:"error,omitempty"`
}

type errorBodyDTO struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Status  string         `json:"status"`
	Errors  []errorItemDTO `json:"errors,omitempty"`
}

type errorItemDTO struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	code   int
	reason string
	status string
}

var internalClass = errorClass{http.StatusInternalServerError, "internalError", "INTERNAL"}

// errorClasses is checked in order with crerr.Is, which also matches marks.
var errorClasses = []struct {
	sentinel error
	class    errorClass
}{
	{usecase.ErrInvalidInput, errorClass{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, errorClass{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{usecase.ErrDuplicateEntity, errorClass{http.StatusConflict, "duplicate", "ALREADY_EXISTS"}},
	{usecase.ErrReferenceViolation, errorClass{http.StatusUnprocessableEntity, "referenceViolation", "FAILED_PRECONDITION"}},
	{usecase.ErrPersistence, internalClass},
}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if crerr.Is(err, c.sentinel) {
			return c.class
		}
	}
	return internalClass
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	_, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(w, status, envelopeDTO{APIVersion: apiVersion, Data: data})
}

// writeCreated answers a form submission. Browsers get a 303 back to the landing
// page carrying the flash text; API clients asking for JSON get 201 with the entity.
func writeCreated(ctx context.Context, w http.ResponseWriter, r *http.Request, flash string, data any) {
	if wantsJSON(r) {
		writeSuccess(ctx, w, http.StatusCreated, data)
		return
	}
	http.Redirect(w, r, "/?"+url.Values{"flash": {flash}}.Encode(), http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	for _, accept := range r.Header.Values("Accept") {
		if strings.Contains(strings.ToLower(accept), "application/json") {
			return true
		}
	}
	return false
}

// writeError reports err with its own message, persistence failures included.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	_, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	writeErrorClass(w, classify(err), err.Error())
}

// writeInternalError hides the cause; used for recovered panics.
func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	_, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeErrorClass(w, internalClass, "internal server error")
}

func writeErrorClass(w http.ResponseWriter, c errorClass, msg string) {
	writeJSON(w, c.code, envelopeDTO{
		APIVersion: apiVersion,
		Error: &errorBodyDTO{
			Code:    c.code,
			Message: msg,
			Status:  c.status,
			Errors:  []errorItemDTO{{Domain: errorDomain, Reason: c.reason, Message: msg}},
		},
	})
}
