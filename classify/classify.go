package classify

import (
	"github.com/Qalifah/logistics/order"
)

// Classification thresholds. Rule order, not threshold arithmetic, is the
// tie-break authority when conditions overlap.
const (
	AirMaxWeightKG     = 20.0
	AirMinDistanceKM   = 500.0
	ShipMinDistanceKM  = 2000.0
	ShipMaxWeightKG    = 1000.0
	TruckHeavyWeightKG = 200.0
)

// Classifier decides which transport mode serves an order. Implementations
// are side-effect free and safe for concurrent use.
type Classifier interface {
	// Classify maps an order to a transport plan. It is total: every
	// input, degenerate weights and distances included, yields a plan.
	Classify(o order.Order) order.TransportPlan
}

// SlotPolicy reports whether a port slot was reserved for an order.
type SlotPolicy func(order.Order) bool

// ClearancePolicy estimates customs clearance for an order in days.
type ClearancePolicy func(order.Order) int

type classifier struct {
	reserveSlot       SlotPolicy
	estimateClearance ClearancePolicy
}

// New returns a Classifier using the default port-slot and customs
// clearance policies.
func New() Classifier {
	return NewWithPolicies(nil, nil)
}

// NewWithPolicies returns a Classifier with the given ship policies. A nil
// policy falls back to the default: slots always reserve, clearance takes
// two days.
func NewWithPolicies(slot SlotPolicy, clearance ClearancePolicy) Classifier {
	if slot == nil {
		slot = func(order.Order) bool { return true }
	}
	if clearance == nil {
		clearance = func(order.Order) int { return 2 }
	}
	return &classifier{reserveSlot: slot, estimateClearance: clearance}
}

func (c *classifier) Classify(o order.Order) order.TransportPlan {
	m := c.modeFor(o)
	return order.TransportPlan{
		Mode:    m,
		ETADays: order.ETADays(m),
		Info:    order.Info(m),
	}
}

// modeFor evaluates the rules in priority order: air, then ship, then
// truck. Negative weights and distances are not clamped; they flow through
// the comparisons and the route arithmetic literally.
func (c *classifier) modeFor(o order.Order) order.Mode {
	// Urgent, light and far: fly it.
	if o.Urgent && o.WeightKG < AirMaxWeightKG && o.DistanceKM > AirMinDistanceKM {
		return order.Air{Express: true}
	}

	// Extreme distance or weight: ship it.
	if o.DistanceKM > ShipMinDistanceKM || o.WeightKG > ShipMaxWeightKG {
		return order.Ship{
			SlotReserved:  c.reserveSlot(o),
			ClearanceDays: c.estimateClearance(o),
		}
	}

	return order.Truck{
		RouteMinutes:   RouteMinutes(o),
		HeavyEquipment: o.WeightKG > TruckHeavyWeightKG,
	}
}

// RouteMinutes plans the road leg for an order. Urgent orders get the
// expedited 0.8 factor. The result is in minutes and is not rounded here.
func RouteMinutes(o order.Order) float64 {
	base := 30.0 + o.DistanceKM/50.0
	if o.Urgent {
		base *= 0.8
	}
	return base
}
