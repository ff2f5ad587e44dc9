package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Document is a JSON value stored as-is. The schema does not own its structure;
// cart lines, applied coupon codes, discount rules and serviceable shop lists are
// all shaped by the calling application.
type Document json.RawMessage

func NewDocument(v interface{}) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return Document(b), nil
}

// MustDocument is NewDocument for literals known to encode.
func MustDocument(v interface{}) Document {
	d, err := NewDocument(v)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Document) Decode(v interface{}) error {
	return json.Unmarshal(d, v)
}

// IsContainer reports whether d holds a JSON object or array.
func (d Document) IsContainer() bool {
	if !json.Valid(d) {
		return false
	}
	trimmed := bytes.TrimSpace(d)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = nil
		return nil
	}
	*d = append((*d)[:0], b...)
	return nil
}

// Value sends the document as text; lib/pq would encode []byte as bytea.
func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return string(d), nil
}

func (d *Document) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = Document(v)
	default:
		return fmt.Errorf("document: cannot scan %T", src)
	}
	return nil
}
