package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/logistics/order"
)

func TestClassifyRules(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		order    order.Order
		wantMode order.Mode
		wantETA  int
	}{
		{
			name:     "urgent light far goes by air",
			order:    order.Order{ID: 1, WeightKG: 5, DistanceKM: 600, Urgent: true},
			wantMode: order.Air{Express: true},
			wantETA:  1,
		},
		{
			name:     "extreme weight goes by ship",
			order:    order.Order{ID: 2, WeightKG: 1500, DistanceKM: 100, Urgent: false},
			wantMode: order.Ship{SlotReserved: true, ClearanceDays: 2},
			wantETA:  12,
		},
		{
			name:     "extreme distance goes by ship",
			order:    order.Order{ID: 5, WeightKG: 10, DistanceKM: 2500, Urgent: false},
			wantMode: order.Ship{SlotReserved: true, ClearanceDays: 2},
			wantETA:  12,
		},
		{
			name:     "everything else goes by truck",
			order:    order.Order{ID: 3, WeightKG: 50, DistanceKM: 1000, Urgent: false},
			wantMode: order.Truck{RouteMinutes: 50, HeavyEquipment: false},
			wantETA:  1,
		},
		{
			name:     "urgent heavy truck gets expedited route and equipment day",
			order:    order.Order{ID: 4, WeightKG: 300, DistanceKM: 100, Urgent: true},
			wantMode: order.Truck{RouteMinutes: (30 + 2) * 0.8, HeavyEquipment: true},
			wantETA:  2,
		},
		{
			name:     "air rule wins over ship when both match",
			order:    order.Order{ID: 6, WeightKG: 10, DistanceKM: 3000, Urgent: true},
			wantMode: order.Air{Express: true},
			wantETA:  1,
		},
		{
			name:     "weight threshold is strict, 20kg flies no more",
			order:    order.Order{ID: 7, WeightKG: 20, DistanceKM: 600, Urgent: true},
			wantMode: order.Truck{RouteMinutes: (30 + 12) * 0.8, HeavyEquipment: false},
			wantETA:  1,
		},
		{
			name:     "non-urgent light far stays on the road",
			order:    order.Order{ID: 8, WeightKG: 5, DistanceKM: 600, Urgent: false},
			wantMode: order.Truck{RouteMinutes: 42, HeavyEquipment: false},
			wantETA:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := c.Classify(tt.order)
			if wantTruck, ok := tt.wantMode.(order.Truck); ok {
				gotTruck, ok := plan.Mode.(order.Truck)
				require.True(t, ok)
				assert.InDelta(t, wantTruck.RouteMinutes, gotTruck.RouteMinutes, 1e-9)
				assert.Equal(t, wantTruck.HeavyEquipment, gotTruck.HeavyEquipment)
			} else {
				assert.Equal(t, tt.wantMode, plan.Mode)
			}
			assert.Equal(t, tt.wantETA, plan.ETADays)
			assert.NotEmpty(t, plan.Info)
		})
	}
}

func TestClassifyShipPolicies(t *testing.T) {
	c := NewWithPolicies(
		func(order.Order) bool { return false },
		func(order.Order) int { return 4 },
	)

	plan := c.Classify(order.Order{ID: 1, WeightKG: 2000, DistanceKM: 50})

	require.Equal(t, order.Ship{SlotReserved: false, ClearanceDays: 4}, plan.Mode)
	// 10 + 4 clearance + 3 for the missing slot.
	assert.Equal(t, 17, plan.ETADays)
}

func TestClassifyIsPure(t *testing.T) {
	c := New()
	o := order.Order{ID: 9, WeightKG: 120, DistanceKM: 750, Urgent: true}

	first := c.Classify(o)
	second := c.Classify(o)

	assert.Equal(t, first, second)
}

func TestRouteMinutes(t *testing.T) {
	assert.InDelta(t, 50.0, RouteMinutes(order.Order{DistanceKM: 1000}), 1e-9)
	assert.InDelta(t, 25.6, RouteMinutes(order.Order{DistanceKM: 100, Urgent: true}), 1e-9)
	assert.InDelta(t, 30.0, RouteMinutes(order.Order{}), 1e-9)
}

// Negative inputs are not validated anywhere; the thresholds and the route
// arithmetic apply literally.
func TestClassifyDegenerateInputs(t *testing.T) {
	c := New()

	plan := c.Classify(order.Order{ID: 10, WeightKG: -5, DistanceKM: -100})
	require.IsType(t, order.Truck{}, plan.Mode)
	assert.InDelta(t, 28.0, plan.Mode.(order.Truck).RouteMinutes, 1e-9)
	assert.Equal(t, 1, plan.ETADays)

	// Far enough below zero the route goes negative and so does the ETA,
	// with truncation toward zero.
	plan = c.Classify(order.Order{ID: 11, WeightKG: 1, DistanceKM: -10000})
	require.IsType(t, order.Truck{}, plan.Mode)
	assert.InDelta(t, -170.0, plan.Mode.(order.Truck).RouteMinutes, 1e-9)
	assert.Equal(t, -1, plan.ETADays)
}
