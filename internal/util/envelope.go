package util

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// UpstreamFailure is a producer envelope carrying "success": false.
type UpstreamFailure struct {
	Message string
}

func (e *UpstreamFailure) Error() string {
	if e.Message == "" {
		return "upstream reported a failure"
	}
	return "upstream reported a failure: " + e.Message
}

// UnwrapEnvelope returns the payload of a {"success", "data"} producer envelope.
// Bodies without a "data" object are returned as is. A body flagged with
// "success": false yields an *UpstreamFailure.
func UnwrapEnvelope(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("malformed JSON")
	}

	if success := gjson.GetBytes(body, "success"); success.Type == gjson.False {
		return nil, &UpstreamFailure{Message: gjson.GetBytes(body, "error").String()}
	}

	if data := gjson.GetBytes(body, "data"); data.IsObject() {
		return []byte(data.Raw), nil
	}

	return body, nil
}
