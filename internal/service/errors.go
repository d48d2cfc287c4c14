package service

import (
	"errors"

	"qbit/internal/calendar"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidDate is the calendar error, re-exported so handlers need one import.
	ErrInvalidDate    = calendar.ErrInvalidDate
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("conflict")
	ErrReplaceAborted = errors.New("replace aborted, previous todos kept")
	ErrAIUnavailable  = errors.New("ai service unavailable")
	ErrAIResponse     = errors.New("unparsable ai response")
)

// notFound maps a missing row to ErrNotFound and passes any other error through.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
