package entities

import "errors"

// Common errors
var (
	ErrDebateNotFound      = errors.New("debate not found")
	ErrDebateFinished      = errors.New("debate has finished")
	ErrDebateNotActive     = errors.New("debate is not active")
	ErrDebateNotPaused     = errors.New("debate is not paused")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidMode         = errors.New("invalid debate mode")
	ErrInvalidFormat       = errors.New("invalid debate format")
	ErrInvalidTeamSplit    = errors.New("team mode requires participants on both teams")
	ErrTooFewParticipants  = errors.New("at least two participants are required")
	ErrRaiseHandTeamMode   = errors.New("raise hand is only available in solo mode")
	ErrTopicNotFound       = errors.New("topic not found")
)
