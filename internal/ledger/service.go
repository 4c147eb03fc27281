package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/export"
	"github.com/cleared-dev/budget/internal/id"
	"github.com/cleared-dev/budget/internal/log"
	"github.com/cleared-dev/budget/internal/model"
	"github.com/cleared-dev/budget/internal/store"
)

// ErrAlreadyInitialized is returned by Init when a ledger document exists.
var ErrAlreadyInitialized = errors.New("ledger already exists")

// Service runs every command as one load, mutate, save cycle against the store.
type Service struct {
	store    *store.Store
	activity *activity.Log
	log      *log.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithActivityLog records each successful mutation in l.
func WithActivityLog(l *activity.Log) Option {
	return func(s *Service) { s.activity = l }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a ledger Service.
func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		activity: activity.New(""),
		log:      log.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("ledger").With("data_file", st.Path())
	return s
}

// AddResult is the outcome of a successful Add or Import.
type AddResult struct {
	Transactions []model.Transaction
	Alerts       []Alert
}

// Init writes an empty document unless one already exists.
func (s *Service) Init() error {
	if s.store.Exists() {
		return ErrAlreadyInitialized
	}
	if err := s.store.Save(model.NewDocument()); err != nil {
		return err
	}
	s.log.Debug("ledger created", "path", s.store.Path())
	return nil
}

// Add validates params, appends the new transaction, saves, and checks goals.
// Invalid input returns a ValidationError and leaves the store untouched.
func (s *Service) Add(params CreateParams) (AddResult, error) {
	doc, err := s.store.Load()
	if err != nil {
		return AddResult{}, err
	}

	now := s.now()
	tx, err := CreateTransaction(params, now, doc.LastID())
	if err != nil {
		return AddResult{}, err
	}

	doc.Transactions = append(doc.Transactions, tx)
	if err := s.store.Save(doc); err != nil {
		return AddResult{}, err
	}
	s.log.Debug("transaction added", "id", tx.ID, "type", tx.Type, "amount", tx.Amount.String())

	s.record(activity.Entry{
		Timestamp:     now,
		Command:       "add",
		Details:       fmt.Sprintf("%s %s %s", tx.Type, tx.Amount.StringFixed(2), tx.Category),
		TransactionID: id.Format(tx.ID),
	})

	return AddResult{
		Transactions: []model.Transaction{tx},
		Alerts:       CheckAlerts(doc.Transactions, &doc.Goals),
	}, nil
}

// Import appends every row of a CSV file in export format. Rows are validated
// like Add input and get fresh IDs but keep their dates. Nothing is saved
// unless every row is valid.
func (s *Service) Import(path string) (AddResult, error) {
	rows, err := export.ReadFile(path)
	if err != nil {
		return AddResult{}, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return AddResult{}, err
	}

	now := s.now()
	last := doc.LastID()
	added := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := CreateTransaction(CreateParams{
			Type:        string(row.Type),
			Amount:      row.Amount.String(),
			Category:    row.Category,
			Description: row.Description,
		}, now, last)
		if err != nil {
			return AddResult{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		tx.Date = row.Date
		last = tx.ID
		added = append(added, tx)
	}
	if len(added) == 0 {
		return AddResult{}, nil
	}

	doc.Transactions = append(doc.Transactions, added...)
	if err := s.store.Save(doc); err != nil {
		return AddResult{}, err
	}
	s.log.Debug("transactions imported", "count", len(added), "file", path)

	s.record(activity.Entry{
		Timestamp: now,
		Command:   "import",
		Details:   fmt.Sprintf("%d transactions from %s", len(added), path),
	})

	return AddResult{
		Transactions: added,
		Alerts:       CheckAlerts(doc.Transactions, &doc.Goals),
	}, nil
}

// Delete removes the transaction whose ID string equals ref. It returns a
// NotFoundError, without saving, when nothing matches.
func (s *Service) Delete(ref string) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}

	if !DeleteTransaction(doc, ref) {
		return NotFoundError{ID: ref}
	}
	if err := s.store.Save(doc); err != nil {
		return err
	}
	s.log.Debug("transaction deleted", "id", ref)

	s.record(activity.Entry{
		Timestamp:     s.now(),
		Command:       "delete",
		TransactionID: ref,
	})
	return nil
}

// SetGoal upserts the spending ceiling for a category or model.TotalGoalKey.
func (s *Service) SetGoal(key, amount string) (decimal.Decimal, error) {
	if err := ValidateCategory(key); err != nil {
		return decimal.Decimal{}, err
	}
	goal, err := ParseAmount(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return decimal.Decimal{}, err
	}
	doc.Goals.Set(key, goal)
	if err := s.store.Save(doc); err != nil {
		return decimal.Decimal{}, err
	}
	s.log.Debug("goal set", "key", key, "amount", goal.String())

	s.record(activity.Entry{
		Timestamp: s.now(),
		Command:   "setgoal",
		Details:   fmt.Sprintf("%s %s", key, goal.StringFixed(2)),
	})
	return goal, nil
}

// Balance returns income minus expenses over the whole ledger.
func (s *Service) Balance() (decimal.Decimal, error) {
	doc, err := s.store.Load()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Balance(doc.Transactions), nil
}

// Transactions returns all transactions in insertion order.
func (s *Service) Transactions() ([]model.Transaction, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Transactions, nil
}

// Goals returns the configured goals.
func (s *Service) Goals() (*model.Goals, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return &doc.Goals, nil
}

// Alerts returns the goals currently exceeded.
func (s *Service) Alerts() ([]Alert, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return CheckAlerts(doc.Transactions, &doc.Goals), nil
}

// Export writes all transactions to a CSV file and returns how many were
// written. An empty ledger returns export.ErrNothingToExport.
func (s *Service) Export(path string) (int, error) {
	doc, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	if err := export.WriteFile(path, doc.Transactions); err != nil {
		return 0, err
	}
	s.log.Debug("transactions exported", "count", len(doc.Transactions), "file", path)
	return len(doc.Transactions), nil
}

// History returns the activity log, oldest first.
func (s *Service) History() ([]activity.Entry, error) {
	return s.activity.Read()
}

// HistoryEnabled reports whether mutations are being recorded.
func (s *Service) HistoryEnabled() bool {
	return s.activity.Enabled()
}

func (s *Service) record(e activity.Entry) {
	if err := s.activity.Append(e); err != nil {
		s.log.Warn("failed to write activity log", "error", err)
	}
}
