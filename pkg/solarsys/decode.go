package solarsys

import (
	"encoding/json"
)

// listResponse is the collection envelope returned by the list endpoint.
type listResponse struct {
	Bodies *[]CelestialBody `json:"bodies"`
}

// DecodeList parses a list-mode response of the form {"bodies": [...]}.
// A missing or null "bodies" member, malformed JSON, or any element lacking a
// required field yields a *DecodeError.
func DecodeList(data []byte) ([]CelestialBody, error) {
	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if resp.Bodies == nil {
		return nil, &DecodeError{Err: missingField("bodies")}
	}
	return *resp.Bodies, nil
}

// DecodeBody parses a detail-mode response holding a single body object.
func DecodeBody(data []byte) (*CelestialBody, error) {
	var b CelestialBody
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &b, nil
}
