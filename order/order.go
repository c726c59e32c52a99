package order

// ID identifies an order. IDs are assigned by the caller and are not
// checked for uniqueness.
type ID int

// Order is a single shipment request. Weight and distance are taken as
// given; the engine does not reject degenerate values.
type Order struct {
	ID         ID
	WeightKG   float64
	DistanceKM float64
	Urgent     bool
}
