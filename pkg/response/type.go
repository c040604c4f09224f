package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the JSON body of every non-2xx response.
type ErrorResp struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
}

// DateTime is a time that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
