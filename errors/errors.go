package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/debateclub/arena/internal/domain/entities"
)

// AppError is the application error type carried to the HTTP layer
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Debate errors

func ErrDebateNotFound(debateID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_DEBATE_NOT_FOUND,
		Message:  "Debate not found",
	}.WithDetail("debate_id", debateID)
}

func ErrDebateFinished(debateID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_DEBATE_FINISHED,
		Message:  "Debate has already finished",
	}.WithDetail("debate_id", debateID)
}

func ErrDebateInvalidState(debateID, expected string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_DEBATE_INVALID_STATE,
		Message:  "Debate is in the wrong state for this operation",
	}.WithDetail("debate_id", debateID).
		WithDetail("expected_state", expected)
}

func ErrDebateInvalidSetup(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_DEBATE_INVALID_SETUP,
		Message:  "Invalid debate setup",
	}
}

func ErrParticipantNotFound(participantID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_PARTICIPANT_NOT_FOUND,
		Message:  "Participant not found",
	}.WithDetail("participant_id", participantID)
}

func ErrRaiseHandUnavailable() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_RAISE_HAND_UNAVAILABLE,
		Message:  "Raise hand is only available in solo mode",
	}
}

// Provider errors

func ErrProviderFailed(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_PROVIDER_FAILED,
		Message:  fmt.Sprintf("Provider call failed: %s", provider),
	}
}

// Export errors

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export transcript",
	}.WithDetail("format", format)
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

// Database errors

func ErrDBQueryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}
}

// FromDomain maps domain sentinel errors to AppErrors. Unrecognized
// errors become internal errors.
func FromDomain(err error, debateID string) AppError {
	switch {
	case stdErrors.Is(err, entities.ErrDebateNotFound):
		return ErrDebateNotFound(debateID)
	case stdErrors.Is(err, entities.ErrDebateFinished):
		return ErrDebateFinished(debateID)
	case stdErrors.Is(err, entities.ErrDebateNotActive):
		return ErrDebateInvalidState(debateID, "active")
	case stdErrors.Is(err, entities.ErrDebateNotPaused):
		return ErrDebateInvalidState(debateID, "paused")
	case stdErrors.Is(err, entities.ErrParticipantNotFound):
		return ErrParticipantNotFound("")
	case stdErrors.Is(err, entities.ErrRaiseHandTeamMode):
		return ErrRaiseHandUnavailable()
	case stdErrors.Is(err, entities.ErrInvalidMode),
		stdErrors.Is(err, entities.ErrInvalidFormat),
		stdErrors.Is(err, entities.ErrInvalidTeamSplit),
		stdErrors.Is(err, entities.ErrTooFewParticipants),
		stdErrors.Is(err, entities.ErrTopicNotFound):
		return ErrDebateInvalidSetup(err)
	default:
		return ErrInternal(err)
	}
}
