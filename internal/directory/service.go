package directory

// Service owns the dataset behind the contacts endpoint. The directory is
// a single page: there are no pagination parameters and the full dataset
// is returned on every request.
type Service struct {
	entries []Entry
}

// NewService creates a directory service seeded with the demo dataset.
func NewService() *Service {
	return &Service{
		entries: []Entry{
			{ID: 1, Name: "Nguyen Van An", Phone: "(090) 123-4567"},
			{ID: 2, Name: "Tran Thi Binh", Phone: "(091) 234-5678"},
			{ID: 3, Name: "Le Hoang Cuong", Phone: "(092) 345-6789"},
			{ID: 4, Name: "Pham Thu Duyen", Phone: "(093) 456-7890"},
			{ID: 5, Name: "Hoang Minh Duc", Phone: "(094) 567-8901"},
			{ID: 6, Name: "Vu Ngoc Giang", Phone: "(095) 678-9012"},
			{ID: 7, Name: "Dang Quang Huy", Phone: "(096) 789-0123"},
			{ID: 8, Name: "Bui Thanh Lam", Phone: "(097) 890-1234"},
			{ID: 9, Name: "Do Xuan Mai", Phone: "(098) 901-2345"},
			{ID: 10, Name: "Ngo Bao Nam", Phone: "(099) 012-3456"},
			{ID: 11, Name: "Ly Kim Oanh", Phone: "(090) 111-2233"},
			{ID: 12, Name: "Trinh Van Phuc", Phone: "(091) 222-3344"},
		},
	}
}

// List returns a copy of every entry in the directory.
func (s *Service) List() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
