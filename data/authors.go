package data

// Author defines an author record.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (a *Author) GetID() int64   { return a.ID }
func (a *Author) SetID(id int64) { a.ID = id }
