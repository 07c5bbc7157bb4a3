package aur

import "encoding/json"

// infoResponse is the subset of the RPC v5 info reply that is read.
// Every field is optional; missing or mistyped values fall back to zero.
type infoResponse struct {
	ResultCount json.RawMessage `json:"resultcount"`
	Results     json.RawMessage `json:"results"`
}

type infoResult struct {
	Version json.RawMessage `json:"Version"`
}

func (r *infoResponse) count() uint64 {
	var n uint64
	if err := json.Unmarshal(r.ResultCount, &n); err != nil {
		return 0
	}

	return n
}

func (r *infoResponse) firstVersion() string {
	var results []infoResult
	if err := json.Unmarshal(r.Results, &results); err != nil || len(results) == 0 {
		return ""
	}

	var v string
	if err := json.Unmarshal(results[0].Version, &v); err != nil {
		return ""
	}

	return v
}
