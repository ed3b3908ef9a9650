package data

// Book defines a book record. AuthorID and CategoryID are stored as given and
// are never resolved against the author or category collections.
type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	AuthorID      int64  `json:"author_id"`
	CategoryID    int64  `json:"category_id"`
	PublishedYear int64  `json:"published_year"`
}

// GetID returns the book's identifier.
func (b *Book) GetID() int64 { return b.ID }

// SetID assigns the book's identifier.
func (b *Book) SetID(id int64) { b.ID = id }
