package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Debate lifecycle
	ErrorCode_DEBATE_NOT_FOUND     ErrorCode = 2000
	ErrorCode_DEBATE_FINISHED      ErrorCode = 2001
	ErrorCode_DEBATE_INVALID_STATE ErrorCode = 2002
	ErrorCode_DEBATE_INVALID_SETUP ErrorCode = 2003

	// Participants
	ErrorCode_PARTICIPANT_NOT_FOUND ErrorCode = 2100
	ErrorCode_RAISE_HAND_UNAVAILABLE ErrorCode = 2101

	// Providers and judging
	ErrorCode_PROVIDER_FAILED ErrorCode = 2200

	// Export and storage
	ErrorCode_EXPORT_FAILED  ErrorCode = 2300
	ErrorCode_STORAGE_FAILED ErrorCode = 2301

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 2400
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_DEBATE_NOT_FOUND:       "DEBATE_NOT_FOUND",
	ErrorCode_DEBATE_FINISHED:        "DEBATE_FINISHED",
	ErrorCode_DEBATE_INVALID_STATE:   "DEBATE_INVALID_STATE",
	ErrorCode_DEBATE_INVALID_SETUP:   "DEBATE_INVALID_SETUP",
	ErrorCode_PARTICIPANT_NOT_FOUND:  "PARTICIPANT_NOT_FOUND",
	ErrorCode_RAISE_HAND_UNAVAILABLE: "RAISE_HAND_UNAVAILABLE",
	ErrorCode_PROVIDER_FAILED:        "PROVIDER_FAILED",
	ErrorCode_EXPORT_FAILED:          "EXPORT_FAILED",
	ErrorCode_STORAGE_FAILED:         "STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
