package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/debateclub/arena/internal/domain/entities"
)

func TestFromDomain(t *testing.T) {
	cases := []struct {
		err      error
		httpCode int
		code     ErrorCode
	}{
		{entities.ErrDebateNotFound, http.StatusNotFound, ErrorCode_DEBATE_NOT_FOUND},
		{entities.ErrDebateFinished, http.StatusConflict, ErrorCode_DEBATE_FINISHED},
		{entities.ErrDebateNotActive, http.StatusConflict, ErrorCode_DEBATE_INVALID_STATE},
		{entities.ErrDebateNotPaused, http.StatusConflict, ErrorCode_DEBATE_INVALID_STATE},
		{entities.ErrParticipantNotFound, http.StatusNotFound, ErrorCode_PARTICIPANT_NOT_FOUND},
		{entities.ErrRaiseHandTeamMode, http.StatusConflict, ErrorCode_RAISE_HAND_UNAVAILABLE},
		{entities.ErrInvalidMode, http.StatusBadRequest, ErrorCode_DEBATE_INVALID_SETUP},
		{entities.ErrInvalidFormat, http.StatusBadRequest, ErrorCode_DEBATE_INVALID_SETUP},
		{entities.ErrInvalidTeamSplit, http.StatusBadRequest, ErrorCode_DEBATE_INVALID_SETUP},
		{entities.ErrTooFewParticipants, http.StatusBadRequest, ErrorCode_DEBATE_INVALID_SETUP},
		{entities.ErrTopicNotFound, http.StatusBadRequest, ErrorCode_DEBATE_INVALID_SETUP},
		{stdErrors.New("disk on fire"), http.StatusInternalServerError, ErrorCode_INTERNAL},
	}

	for _, tc := range cases {
		appErr := FromDomain(tc.err, "some-id")
		if appErr.HTTPCode != tc.httpCode {
			t.Fatalf("%v: http = %d, want %d", tc.err, appErr.HTTPCode, tc.httpCode)
		}
		if appErr.Code != tc.code {
			t.Fatalf("%v: code = %s, want %s", tc.err, appErr.Code.String(), tc.code.String())
		}
	}
}

func TestFromDomain_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("loading session: %w", entities.ErrDebateNotFound)
	appErr := FromDomain(wrapped, "some-id")
	if appErr.Code != ErrorCode_DEBATE_NOT_FOUND {
		t.Fatalf("code = %s", appErr.Code.String())
	}
	if appErr.Details["debate_id"] != "some-id" {
		t.Fatalf("details = %v", appErr.Details)
	}
}

func TestAppError_UnwrapAndDetails(t *testing.T) {
	cause := stdErrors.New("connection refused")
	appErr := ErrInternal(cause).WithDetail("op", "save")

	if !stdErrors.Is(appErr, cause) {
		t.Fatal("unwrap chain broken")
	}
	if appErr.Details["op"] != "save" {
		t.Fatalf("details = %v", appErr.Details)
	}
	if appErr.Error() == "" {
		t.Fatal("empty error string")
	}
}
