package directory

// Entry is the wire representation of a contact served by the directory
// API. Ids are numeric here; the list client coerces them to strings.
type Entry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
