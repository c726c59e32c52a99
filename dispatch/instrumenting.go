package dispatch

import (
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/order"
)

type instrumentingService struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
func NewInstrumentingService(counter metrics.Counter, latency metrics.Histogram, s Service) Service {
	return &instrumentingService{
		requestCount:   counter,
		requestLatency: latency,
		Service:        s,
	}
}

func (s *instrumentingService) SubmitOrder(id order.ID, weightKG, distanceKM float64, urgent bool) error {
	defer func(begin time.Time) {
		s.requestCount.With("method", "submit_order").Add(1)
		s.requestLatency.With("method", "submit_order").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.Service.SubmitOrder(id, weightKG, distanceKM, urgent)
}

func (s *instrumentingService) Orders() []ledger.Entry {
	defer func(begin time.Time) {
		s.requestCount.With("method", "list_orders").Add(1)
		s.requestLatency.With("method", "list_orders").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.Service.Orders()
}

func (s *instrumentingService) Report() string {
	defer func(begin time.Time) {
		s.requestCount.With("method", "report").Add(1)
		s.requestLatency.With("method", "report").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.Service.Report()
}

func (s *instrumentingService) Reset() error {
	defer func(begin time.Time) {
		s.requestCount.With("method", "reset").Add(1)
		s.requestLatency.With("method", "reset").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.Service.Reset()
}
