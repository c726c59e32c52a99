package dispatch

import (
	"errors"
	"strings"

	"github.com/pborman/uuid"

	"github.com/Qalifah/logistics/classify"
	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/order"
)

// ErrInvalidArgument is returned when one or more arguments are invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// Service is the interface that provides the order dispatch methods.
type Service interface {
	// SubmitOrder classifies a shipping order and records the chosen plan
	// under its id. Classification is total over all input values; only
	// ledger storage can fail.
	SubmitOrder(id order.ID, weightKG, distanceKM float64, urgent bool) error

	// Orders returns every recorded entry in submission order.
	Orders() []ledger.Entry

	// Report renders the ledger, one line per recorded order.
	Report() string

	// Reset discards all recorded orders.
	Reset() error
}

type service struct {
	classifier classify.Classifier
	entries    ledger.Repository
}

// NewService creates a dispatch service with the necessary dependencies.
func NewService(c classify.Classifier, entries ledger.Repository) Service {
	return &service{classifier: c, entries: entries}
}

func (s *service) SubmitOrder(id order.ID, weightKG, distanceKM float64, urgent bool) error {
	o := order.Order{ID: id, WeightKG: weightKG, DistanceKM: distanceKM, Urgent: urgent}
	plan := s.classifier.Classify(o)
	return s.entries.Append(ledger.Entry{OrderID: o.ID, Plan: plan})
}

func (s *service) Orders() []ledger.Entry {
	return s.entries.Entries()
}

func (s *service) Report() string {
	return ledger.Render(s.entries.Entries())
}

func (s *service) Reset() error {
	return s.entries.Reset()
}

// NextSessionID generates a short id naming one ledger session.
func NextSessionID() string {
	return strings.Split(strings.ToUpper(uuid.New()), "-")[0]
}
