package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another document that the API sends either as a
// bare id string or as a populated object.
type Ref struct {
	ID    string
	Name  string
	Title string
}

type populatedRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	var p populatedRef
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// MarshalJSON writes the bare id.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}
