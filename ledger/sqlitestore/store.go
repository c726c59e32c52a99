package sqlitestore

import (
	"database/sql"
	"fmt"

	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/order"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_entries (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id        INTEGER NOT NULL,
	mode            TEXT    NOT NULL,
	express         INTEGER NOT NULL DEFAULT 0,
	slot_reserved   INTEGER NOT NULL DEFAULT 0,
	clearance_days  INTEGER NOT NULL DEFAULT 0,
	route_minutes   REAL    NOT NULL DEFAULT 0,
	heavy_equipment INTEGER NOT NULL DEFAULT 0,
	eta_days        INTEGER NOT NULL,
	info            TEXT    NOT NULL
);`

// Store is a SQLite-backed ledger repository. The seq column preserves
// append order across restarts.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite ledger at the given path, creating the schema when
// missing.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite ledger %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite ledger %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite ledger schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(e ledger.Entry) error {
	var (
		express, slotReserved, heavy bool
		clearance                    int
		minutes                      float64
	)
	switch m := e.Plan.Mode.(type) {
	case order.Air:
		express = m.Express
	case order.Ship:
		slotReserved, clearance = m.SlotReserved, m.ClearanceDays
	case order.Truck:
		minutes, heavy = m.RouteMinutes, m.HeavyEquipment
	}

	_, err := s.db.Exec(`
		INSERT INTO ledger_entries
			(order_id, mode, express, slot_reserved, clearance_days, route_minutes, heavy_equipment, eta_days, info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int(e.OrderID), e.Plan.Mode.Kind(), express, slotReserved, clearance, minutes, heavy, e.Plan.ETADays, e.Plan.Info,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

func (s *Store) Entries() []ledger.Entry {
	rows, err := s.db.Query(`
		SELECT order_id, mode, express, slot_reserved, clearance_days, route_minutes, heavy_equipment, eta_days, info
		FROM ledger_entries ORDER BY seq`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var (
			id                           int
			kind, info                   string
			express, slotReserved, heavy bool
			clearance, eta               int
			minutes                      float64
		)
		if err := rows.Scan(&id, &kind, &express, &slotReserved, &clearance, &minutes, &heavy, &eta, &info); err != nil {
			return entries
		}

		var m order.Mode
		switch kind {
		case "Air":
			m = order.Air{Express: express}
		case "Ship":
			m = order.Ship{SlotReserved: slotReserved, ClearanceDays: clearance}
		case "Truck":
			m = order.Truck{RouteMinutes: minutes, HeavyEquipment: heavy}
		default:
			continue
		}

		entries = append(entries, ledger.Entry{
			OrderID: order.ID(id),
			Plan:    order.TransportPlan{Mode: m, ETADays: eta, Info: info},
		})
	}
	return entries
}

func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM ledger_entries`); err != nil {
		return fmt.Errorf("reset ledger: %w", err)
	}
	return nil
}
