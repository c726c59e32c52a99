package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Qalifah/logistics/order"
)

// MakeHandler returns a new HTTP handler for the dispatch service.
func MakeHandler(endpoints Set, logger kitlog.Logger) http.Handler {
	r := mux.NewRouter()

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorHandler(transport.NewLogErrorHandler(logger)),
		kithttp.ServerErrorEncoder(encodeError),
	}

	submitOrderHandler := kithttp.NewServer(
		endpoints.SubmitOrderEndpoint,
		decodeSubmitOrderRequest,
		encodeResponse,
		opts...,
	)

	listOrdersHandler := kithttp.NewServer(
		endpoints.ListOrdersEndpoint,
		decodeListOrdersRequest,
		encodeResponse,
		opts...,
	)

	reportHandler := kithttp.NewServer(
		endpoints.ReportEndpoint,
		decodeReportRequest,
		encodeReportResponse,
		opts...,
	)

	resetHandler := kithttp.NewServer(
		endpoints.ResetEndpoint,
		decodeResetRequest,
		encodeResponse,
		opts...,
	)

	r.Handle("/dispatch/v1/orders", submitOrderHandler).Methods("POST")
	r.Handle("/dispatch/v1/orders", listOrdersHandler).Methods("GET")
	r.Handle("/dispatch/v1/report", reportHandler).Methods("GET")
	r.Handle("/dispatch/v1/reset", resetHandler).Methods("POST")

	return r
}

func decodeSubmitOrderRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var body struct {
		OrderID    int     `json:"order_id"`
		WeightKG   float64 `json:"weight_kg"`
		DistanceKM float64 `json:"distance_km"`
		Urgent     bool    `json:"urgent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, ErrInvalidArgument
	}

	return submitOrderRequest{
		ID:         order.ID(body.OrderID),
		WeightKG:   body.WeightKG,
		DistanceKM: body.DistanceKM,
		Urgent:     body.Urgent,
	}, nil
}

func decodeListOrdersRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return listOrdersRequest{}, nil
}

func decodeReportRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return reportRequest{}, nil
}

func decodeResetRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return resetRequest{}, nil
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if e, ok := response.(errorer); ok && e.error() != nil {
		encodeError(ctx, e.error(), w)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

// encodeReportResponse writes the report as plain text so callers can read
// it line by line without JSON unwrapping.
func encodeReportResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(reportResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := io.WriteString(w, resp.Report)
	return err
}

type errorer interface {
	error() error
}

// encode errors from business-logic
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch err {
	case ErrInvalidArgument:
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
