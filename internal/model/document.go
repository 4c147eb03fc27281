package model

// Document is the whole persisted ledger state.
type Document struct {
	Transactions []Transaction `json:"transactions"` // insertion order
	Goals        Goals         `json:"goals"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Transactions: []Transaction{}}
}

// LastID returns the largest transaction ID in the document, or 0 when empty.
func (d *Document) LastID() int64 {
	var last int64
	for _, t := range d.Transactions {
		if t.ID > last {
			last = t.ID
		}
	}
	return last
}
