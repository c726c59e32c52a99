package order

import "fmt"

// Mode is the carrier category chosen for an order together with its
// mode-specific parameters. The mode set is closed; consumers switch
// exhaustively over the three implementations.
type Mode interface {
	// Kind returns the carrier category name.
	Kind() string

	mode()
}

// Air carries urgent, light, long-distance orders.
type Air struct {
	Express bool `json:"express"`
}

// Ship carries extreme-weight or extreme-distance orders.
type Ship struct {
	SlotReserved  bool `json:"slot_reserved"`
	ClearanceDays int  `json:"clearance_days"`
}

// Truck is the default carrier for everything else.
type Truck struct {
	RouteMinutes   float64 `json:"route_minutes"`
	HeavyEquipment bool    `json:"heavy_equipment"`
}

func (Air) mode()   {}
func (Ship) mode()  {}
func (Truck) mode() {}

// Kind implements Mode.
func (Air) Kind() string { return "Air" }

// Kind implements Mode.
func (Ship) Kind() string { return "Ship" }

// Kind implements Mode.
func (Truck) Kind() string { return "Truck" }

// ETADays computes the estimated delivery time for a mode in whole days.
// Truck route minutes are truncated toward zero.
func ETADays(m Mode) int {
	switch m := m.(type) {
	case Air:
		if m.Express {
			return 1
		}
		return 2
	case Ship:
		days := 10 + m.ClearanceDays
		if !m.SlotReserved {
			days += 3
		}
		return days
	case Truck:
		days := 1 + int(m.RouteMinutes/60)
		if m.HeavyEquipment {
			days++
		}
		return days
	}
	return 0
}

// ETAText renders the delivery time estimate for reporting.
func ETAText(m Mode) string {
	switch m := m.(type) {
	case Air:
		if m.Express {
			return "Air: 1 day (Express)"
		}
		return "Air: 2 days"
	case Ship:
		return fmt.Sprintf("Ship: %d days", ETADays(m))
	case Truck:
		return fmt.Sprintf("Truck: %d days", ETADays(m))
	}
	return ""
}

// Info returns a human-readable descriptor naming the mode and the
// parameters it was created with. It carries no decision semantics.
func Info(m Mode) string {
	switch m := m.(type) {
	case Air:
		return fmt.Sprintf("Air (Express: %s)", yesNo(m.Express))
	case Ship:
		return fmt.Sprintf("Ship (Reserved: %s)", yesNo(m.SlotReserved))
	case Truck:
		return fmt.Sprintf("Truck (Route: %dm)", int(m.RouteMinutes))
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// TransportPlan is the classification result for one order. A plan is
// produced once by the classifier and never mutated afterwards.
type TransportPlan struct {
	Mode    Mode   `json:"mode"`
	ETADays int    `json:"eta_days"`
	Info    string `json:"info"`
}
