package errors

// ErrorCode identifies an application error category. Codes are stable
// integers so clients can switch on them.
type ErrorCode int

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_ROSTER_INVALID     ErrorCode = 2000
	ErrorCode_TRANSCRIPT_MISSING ErrorCode = 2001
	ErrorCode_AUDIO_URL_MISSING  ErrorCode = 2002
	ErrorCode_EXTRACTION_FAILED  ErrorCode = 2003
	ErrorCode_EXPORT_FAILED      ErrorCode = 2004

	ErrorCode_TRANSCRIPTION_FAILED     ErrorCode = 3000
	ErrorCode_TRANSCRIBER_UNCONFIGURED ErrorCode = 3001
	ErrorCode_STORAGE_FAILED           ErrorCode = 3002
	ErrorCode_CACHE_FAILED             ErrorCode = 3003
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_ROSTER_INVALID:           "ROSTER_INVALID",
	ErrorCode_TRANSCRIPT_MISSING:       "TRANSCRIPT_MISSING",
	ErrorCode_AUDIO_URL_MISSING:        "AUDIO_URL_MISSING",
	ErrorCode_EXTRACTION_FAILED:        "EXTRACTION_FAILED",
	ErrorCode_EXPORT_FAILED:            "EXPORT_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:     "TRANSCRIPTION_FAILED",
	ErrorCode_TRANSCRIBER_UNCONFIGURED: "TRANSCRIBER_UNCONFIGURED",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:             "CACHE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
