package contact

import (
	"encoding/json"
	"fmt"
)

// Contact represents a single entry in the contact list
type Contact struct {
	ID    string `json:"id"`    // Unique within the current collection
	Name  string `json:"name"`  // Display name
	Phone string `json:"phone"` // Display-formatted, not validated
}

// wireContact mirrors the JSON served by the contacts endpoint. Backends
// disagree on whether ids are numbers or strings, so the id is decoded
// loosely and coerced afterwards.
type wireContact struct {
	ID    interface{} `json:"id"`
	Name  string      `json:"name"`
	Phone string      `json:"phone"`
}

// coerceID turns a decoded wire id into its string form.
func coerceID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}
