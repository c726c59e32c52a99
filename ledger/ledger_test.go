package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Qalifah/logistics/order"
)

func entry(id order.ID, m order.Mode) Entry {
	return Entry{
		OrderID: id,
		Plan:    order.TransportPlan{Mode: m, ETADays: order.ETADays(m), Info: order.Info(m)},
	}
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "", Render([]Entry{}))
}

func TestRenderLines(t *testing.T) {
	entries := []Entry{
		entry(1, order.Air{Express: true}),
		entry(2, order.Ship{SlotReserved: true, ClearanceDays: 2}),
		entry(3, order.Truck{RouteMinutes: 50}),
	}

	report := Render(entries)
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "[Order #1] Air (Express: Yes) -> ETA: Air: 1 day (Express)", lines[0])
	assert.Equal(t, "[Order #2] Ship (Reserved: Yes) -> ETA: Ship: 12 days", lines[1])
	assert.Equal(t, "[Order #3] Truck (Route: 50m) -> ETA: Truck: 1 days", lines[2])
}

func TestRenderKeepsAppendOrder(t *testing.T) {
	entries := []Entry{
		entry(7, order.Truck{RouteMinutes: 30}),
		entry(7, order.Truck{RouteMinutes: 30}),
		entry(2, order.Air{Express: true}),
	}

	report := Render(entries)
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[Order #7]"))
	assert.True(t, strings.HasPrefix(lines[1], "[Order #7]"))
	assert.True(t, strings.HasPrefix(lines[2], "[Order #2]"))
}
