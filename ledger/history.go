package ledger

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates the transaction types a history can hold.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// ParseKind converts the external representation of a transaction kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	}
	return "", ErrInvalidKind
}

// Record is one applied transaction as stored in an account's history.
type Record struct {
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// Clock supplies the current time. Injected so that day-scoped counting can
// be tested across calendar boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used outside of tests.
var SystemClock Clock = systemClock{}

// History is the append-only, time-ordered log of transactions applied to a
// single account. Records are never edited or removed.
type History struct {
	records []Record
	clock   Clock
}

func NewHistory() *History {
	return NewHistoryWithClock(SystemClock)
}

func NewHistoryWithClock(clock Clock) *History {
	return &History{clock: clock}
}

// Append records an applied transaction, stamped with the current time.
func (h *History) Append(kind Kind, amount decimal.Decimal) {
	h.records = append(h.records, Record{
		Kind:      kind,
		Amount:    amount,
		Timestamp: h.clock.Now(),
	})
}

// Len reports the total number of records ever appended.
func (h *History) Len() int {
	return len(h.records)
}

// CountToday counts the records stamped on the current calendar date.
func (h *History) CountToday() int {
	return h.countToday(func(Record) bool { return true })
}

// CountTodayOf counts today's records of one kind. The daily withdrawal
// ceiling is derived from this rather than a separate counter, so it resets
// with the calendar day and can never disagree with the history.
func (h *History) CountTodayOf(kind Kind) int {
	return h.countToday(func(r Record) bool { return r.Kind == kind })
}

func (h *History) countToday(match func(Record) bool) int {
	y, m, d := h.clock.Now().Date()
	count := 0
	for _, r := range h.records {
		ry, rm, rd := r.Timestamp.Date()
		if ry == y && rm == m && rd == d && match(r) {
			count++
		}
	}
	return count
}

// Report yields the records matching any of the given kinds, in insertion
// order; with no kinds given it yields every record. Each call produces a
// fresh, finite sequence and never mutates the history. An empty history
// yields nothing.
func (h *History) Report(kinds ...Kind) iter.Seq[Record] {
	records := h.records
	return func(yield func(Record) bool) {
		for _, r := range records {
			if len(kinds) > 0 && !matchesKind(r.Kind, kinds) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func matchesKind(kind Kind, kinds []Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
