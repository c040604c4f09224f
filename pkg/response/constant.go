package response

const (
	// DefaultErrorMessage is sent for 500s when no safe message is supplied.
	DefaultErrorMessage = "An error occurred while processing your request."

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
