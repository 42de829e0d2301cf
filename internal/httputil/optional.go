package httputil

import (
	"bytes"
	"encoding/json"
)

// Optional tracks presence and value for JSON merge-patch fields (RFC 7396):
//   - Present=false: field absent from JSON (don't change)
//   - Present=true, Value=nil: field is JSON null (clear)
//   - Present=true, Value=&v: field has value v
type Optional[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON is only called when the field appears in the document
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
