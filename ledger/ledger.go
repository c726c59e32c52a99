package ledger

import (
	"fmt"
	"strings"

	"github.com/Qalifah/logistics/order"
)

// Entry records the plan chosen for one submitted order.
type Entry struct {
	OrderID order.ID            `json:"order_id"`
	Plan    order.TransportPlan `json:"plan"`
}

// Repository provides access to the ledger store. Entries are appended in
// call order and never reordered or deduplicated by id; removal is
// all-or-nothing via Reset. Implementations serialize access when the
// store is shared between callers.
type Repository interface {
	Append(e Entry) error
	Entries() []Entry
	Reset() error
}

// Render formats entries as the order report, one line per entry in append
// order. An empty ledger renders the empty string. Consumers may parse the
// line layout but it is not a versioned contract.
func Render(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[Order #%d] %s -> ETA: %s\n", e.OrderID, e.Plan.Info, order.ETAText(e.Plan.Mode))
	}
	return b.String()
}
