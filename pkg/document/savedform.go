package document

import "time"

// SavedForm is an immutable snapshot-with-identity of a document taken at
// save time. Saved forms own their submissions and are the unit of sharing.
type SavedForm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  Document  `json:"document"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the saved form.
func (f SavedForm) Clone() SavedForm {
	cp := f
	cp.Document = f.Document.Clone()
	return cp
}
