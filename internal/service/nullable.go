// internal/service/nullable.go
package service

import "encoding/json"

// NullString distinguishes a JSON field that was omitted from one that
// was explicitly set to null. Set is true only when the key appeared in
// the request body; Value stays nil for an explicit null.
type NullString struct {
	Set   bool
	Value *string
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
