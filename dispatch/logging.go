package dispatch

import (
	"time"

	"github.com/go-kit/kit/log"

	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/order"
)

type loggingService struct {
	logger log.Logger
	Service
}

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{logger, s}
}

func (s *loggingService) SubmitOrder(id order.ID, weightKG, distanceKM float64, urgent bool) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "submit_order",
			"order_id", id,
			"weight_kg", weightKG,
			"distance_km", distanceKM,
			"urgent", urgent,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.SubmitOrder(id, weightKG, distanceKM, urgent)
}

func (s *loggingService) Orders() []ledger.Entry {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "list_orders",
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.Service.Orders()
}

func (s *loggingService) Report() string {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "report",
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.Service.Report()
}

func (s *loggingService) Reset() (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "reset",
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.Reset()
}
