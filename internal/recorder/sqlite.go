package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS valuation_snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			sector      TEXT,
			asset_class TEXT,
			quantity    INTEGER,
			last_price  REAL,
			value       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_valuation_ts ON valuation_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS simulation_runs (
			run_id      TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			restriction TEXT,
			simulations INTEGER,
			months      INTEGER,
			seeded      INTEGER,
			mu          REAL,
			sigma       REAL,
			last_nav    REAL,
			horizon_q05 REAL,
			horizon_q50 REAL,
			horizon_q95 REAL,
			elapsed_ms  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_simulation_ts ON simulation_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordValuation(snaps []ValuationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, s := range snaps {
		_, err := r.db.Exec(`INSERT INTO valuation_snapshots
			(timestamp, ticker, sector, asset_class, quantity, last_price, value)
			VALUES (?,?,?,?,?,?,?)`,
			now, s.Ticker, s.Sector, s.AssetClass, s.Quantity, s.LastPrice, s.Value,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSimulation(run *SimulationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	_, err := r.db.Exec(`INSERT INTO simulation_runs
		(run_id, timestamp, restriction, simulations, months, seeded,
		 mu, sigma, last_nav, horizon_q05, horizon_q50, horizon_q95, elapsed_ms)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.RunID, time.Now().Unix(), run.Restriction, run.Simulations, run.Months,
		run.Seeded, run.Mu, run.Sigma, run.LastNAV,
		run.HorizonQ05, run.HorizonQ50, run.HorizonQ95,
		run.Elapsed.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
