package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

func init() {
	// Amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// CorruptStoreError reports a persisted document that cannot be parsed.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("ledger %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// Store persists the ledger document as a single pretty-printed JSON file.
// Every Save rewrites the whole file; there is no locking between processes.
type Store struct {
	path   string
	atomic bool
}

// Option configures a Store.
type Option func(*Store)

// WithAtomicWrite makes Save write a temp file and rename it over the document.
func WithAtomicWrite(atomic bool) Option {
	return func(s *Store) { s.atomic = atomic }
}

// New creates a Store for the document at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a persisted document is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the document. A missing file yields an empty document.
func (s *Store) Load() (*model.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	return doc, nil
}

// Save overwrites the persisted document with doc.
func (s *Store) Save(doc *model.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w", err)
		}
	}

	if !s.atomic {
		if err := os.WriteFile(s.path, data, 0o644); err != nil {
			return fmt.Errorf("writing ledger %s: %w", s.path, err)
		}
		return nil
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing ledger %s: %w", s.path, err)
	}
	return nil
}

// Encode renders doc as indented JSON with a trailing newline.
func Encode(doc *model.Document) ([]byte, error) {
	out := *doc
	if out.Transactions == nil {
		out.Transactions = []model.Transaction{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a persisted document and checks the transaction invariants.
func Decode(data []byte) (*model.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}

	seen := make(map[int64]bool, len(doc.Transactions))
	for i, t := range doc.Transactions {
		if !t.Type.Valid() {
			return nil, fmt.Errorf("transaction %d: unknown type %q", i, t.Type)
		}
		if !model.AmountInRange(t.Amount) {
			return nil, fmt.Errorf("transaction %d: amount out of range", i)
		}
		if !t.Amount.IsPositive() {
			return nil, fmt.Errorf("transaction %d: amount %s is not positive", i, t.Amount)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("transaction %d: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = true
	}
	for key, amount := range doc.Goals.All() {
		if !model.AmountInRange(amount) {
			return nil, fmt.Errorf("goal %q: amount out of range", key)
		}
		if !amount.IsPositive() {
			return nil, fmt.Errorf("goal %q: amount %s is not positive", key, amount)
		}
	}
	return doc, nil
}
