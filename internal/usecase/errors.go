package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateEntity    = errors.New("duplicate entity")
	ErrReferenceViolation = errors.New("reference violation")
	ErrPersistence        = errors.New("persistence failure")
)

// markStoreError tags a repository error with its taxonomy sentinel while keeping
// the original message. Errors already carrying a sentinel pass through.
func markStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case crerr.Is(err, ErrInvalidInput),
		crerr.Is(err, ErrNotFound),
		crerr.Is(err, ErrDuplicateEntity),
		crerr.Is(err, ErrReferenceViolation),
		crerr.Is(err, ErrPersistence):
		return err
	case crerr.Is(err, player.ErrNameTaken):
		return crerr.Mark(err, ErrDuplicateEntity)
	case crerr.Is(err, goal.ErrUnknownReference):
		return crerr.Mark(err, ErrReferenceViolation)
	default:
		return crerr.Mark(err, ErrPersistence)
	}
}

// FailureReason is a short label for metrics and logs.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case crerr.Is(err, ErrInvalidInput):
		return "invalid_input"
	case crerr.Is(err, ErrNotFound):
		return "not_found"
	case crerr.Is(err, ErrDuplicateEntity):
		return "duplicate"
	case crerr.Is(err, ErrReferenceViolation):
		return "reference_violation"
	default:
		return "persistence"
	}
}
