package dispatch

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/go-kit/kit/circuitbreaker"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/ratelimit"
	"github.com/go-kit/kit/tracing/opentracing"
	"github.com/go-kit/kit/tracing/zipkin"

	stdopentracing "github.com/opentracing/opentracing-go"
	stdzipkin "github.com/openzipkin/zipkin-go"
	"github.com/sony/gobreaker"

	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/order"
)

type submitOrderRequest struct {
	ID         order.ID
	WeightKG   float64
	DistanceKM float64
	Urgent     bool
}

type submitOrderResponse struct {
	Err error `json:"error,omitempty"`
}

func (r submitOrderResponse) error() error { return r.Err }

func makeSubmitOrderEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(submitOrderRequest)
		err := s.SubmitOrder(req.ID, req.WeightKG, req.DistanceKM, req.Urgent)
		return submitOrderResponse{Err: err}, nil
	}
}

type listOrdersRequest struct{}

type listOrdersResponse struct {
	Orders []ledger.Entry `json:"orders,omitempty"`
	Err    error          `json:"error,omitempty"`
}

func (r listOrdersResponse) error() error { return r.Err }

func makeListOrdersEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		_ = request.(listOrdersRequest)
		return listOrdersResponse{Orders: s.Orders(), Err: nil}, nil
	}
}

type reportRequest struct{}

type reportResponse struct {
	Report string `json:"report"`
	Err    error  `json:"error,omitempty"`
}

func (r reportResponse) error() error { return r.Err }

func makeReportEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		_ = request.(reportRequest)
		return reportResponse{Report: s.Report(), Err: nil}, nil
	}
}

type resetRequest struct{}

type resetResponse struct {
	Err error `json:"error,omitempty"`
}

func (r resetResponse) error() error { return r.Err }

func makeResetEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		_ = request.(resetRequest)
		err := s.Reset()
		return resetResponse{Err: err}, nil
	}
}

// Set collects all of the endpoints that compose the dispatch service.
type Set struct {
	SubmitOrderEndpoint endpoint.Endpoint
	ListOrdersEndpoint  endpoint.Endpoint
	ReportEndpoint      endpoint.Endpoint
	ResetEndpoint       endpoint.Endpoint
}

// NewSet returns a Set that wraps the provided service, and wires in all of
// the expected endpoint middlewares via the various parameters.
func NewSet(svc Service, otTracer stdopentracing.Tracer, zipkinTracer *stdzipkin.Tracer) Set {
	var submitOrderEndpoint endpoint.Endpoint
	{
		submitOrderEndpoint = makeSubmitOrderEndpoint(svc)

		submitOrderEndpoint = ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Limit(1), 100))(submitOrderEndpoint)
		submitOrderEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{}))(submitOrderEndpoint)
		submitOrderEndpoint = opentracing.TraceServer(otTracer, "SubmitOrder")(submitOrderEndpoint)
		if zipkinTracer != nil {
			submitOrderEndpoint = zipkin.TraceEndpoint(zipkinTracer, "SubmitOrder")(submitOrderEndpoint)
		}
	}

	var listOrdersEndpoint endpoint.Endpoint
	{
		listOrdersEndpoint = makeListOrdersEndpoint(svc)

		listOrdersEndpoint = ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Limit(1), 100))(listOrdersEndpoint)
		listOrdersEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{}))(listOrdersEndpoint)
		listOrdersEndpoint = opentracing.TraceServer(otTracer, "ListOrders")(listOrdersEndpoint)
		if zipkinTracer != nil {
			listOrdersEndpoint = zipkin.TraceEndpoint(zipkinTracer, "ListOrders")(listOrdersEndpoint)
		}
	}

	var reportEndpoint endpoint.Endpoint
	{
		reportEndpoint = makeReportEndpoint(svc)

		reportEndpoint = ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Limit(1), 100))(reportEndpoint)
		reportEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{}))(reportEndpoint)
		reportEndpoint = opentracing.TraceServer(otTracer, "Report")(reportEndpoint)
		if zipkinTracer != nil {
			reportEndpoint = zipkin.TraceEndpoint(zipkinTracer, "Report")(reportEndpoint)
		}
	}

	var resetEndpoint endpoint.Endpoint
	{
		resetEndpoint = makeResetEndpoint(svc)

		resetEndpoint = ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Limit(1), 100))(resetEndpoint)
		resetEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{}))(resetEndpoint)
		resetEndpoint = opentracing.TraceServer(otTracer, "Reset")(resetEndpoint)
		if zipkinTracer != nil {
			resetEndpoint = zipkin.TraceEndpoint(zipkinTracer, "Reset")(resetEndpoint)
		}
	}

	return Set{
		SubmitOrderEndpoint: submitOrderEndpoint,
		ListOrdersEndpoint:  listOrdersEndpoint,
		ReportEndpoint:      reportEndpoint,
		ResetEndpoint:       resetEndpoint,
	}
}

// SubmitOrder implements the service interface so Set can be used as a service.
func (s Set) SubmitOrder(id order.ID, weightKG, distanceKM float64, urgent bool) error {
	resp, err := s.SubmitOrderEndpoint(context.Background(), submitOrderRequest{ID: id, WeightKG: weightKG, DistanceKM: distanceKM, Urgent: urgent})
	if err != nil {
		return err
	}
	response := resp.(submitOrderResponse)
	return response.Err
}

// Orders implements the service interface so Set can be used as a service.
func (s Set) Orders() []ledger.Entry {
	resp, err := s.ListOrdersEndpoint(context.Background(), listOrdersRequest{})
	if err != nil {
		return []ledger.Entry{}
	}
	response := resp.(listOrdersResponse)
	return response.Orders
}

// Report implements the service interface so Set can be used as a service.
func (s Set) Report() string {
	resp, err := s.ReportEndpoint(context.Background(), reportRequest{})
	if err != nil {
		return ""
	}
	response := resp.(reportResponse)
	return response.Report
}

// Reset implements the service interface so Set can be used as a service.
func (s Set) Reset() error {
	resp, err := s.ResetEndpoint(context.Background(), resetRequest{})
	if err != nil {
		return err
	}
	response := resp.(resetResponse)
	return response.Err
}
