// Package resultstore optionally materializes a completed Pregel run's
// public value-store properties into a SQLite database, for callers that
// want to query results with SQL rather than hold the whole NodeValueStore
// in memory. Grounded on the teacher's pkg/export/sqlite_export.go
// (schema-then-transactional-insert shape, modernc.org/sqlite driver) but
// scoped down from a full site-export pipeline to two tables (runs and
// node_values) shared by every saved run.
package resultstore

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/hugegraph/pregel"
)

// Store wraps a SQLite database used to persist Pregel run results.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at path and ensures its schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create result store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			algorithm     TEXT NOT NULL,
			status        TEXT NOT NULL,
			iterations    INTEGER NOT NULL,
			node_count    INTEGER NOT NULL,
			created_at    TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS node_values (
			run_id   INTEGER NOT NULL REFERENCES runs(id),
			node_id  INTEGER NOT NULL,
			property TEXT NOT NULL,
			value    REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_node_values_run ON node_values(run_id);
	`)
	return err
}

// SaveRun persists the public Double/Long properties of res for every node
// 0..nodeCount-1, tagged with algorithm's name, and returns the new run id.
func (s *Store) SaveRun(algorithm string, res pregel.Result, schema pregel.Schema, nodeCount int) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	runResult, err := tx.Exec(
		`INSERT INTO runs (algorithm, status, iterations, node_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		algorithm, res.Status.String(), res.Iterations, nodeCount, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := runResult.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO node_values (run_id, node_id, property, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, prop := range schema {
		if prop.Visibility != pregel.Public {
			continue
		}
		switch prop.Type {
		case pregel.Double:
			accessor := res.Values.PublicDoubleAccessor(prop.Name)
			for n := 0; n < nodeCount; n++ {
				if _, err := stmt.Exec(runID, n, prop.Name, accessor(n)); err != nil {
					return 0, fmt.Errorf("insert node %d property %s: %w", n, prop.Name, err)
				}
			}
		case pregel.Long:
			accessor := res.Values.PublicLongAccessor(prop.Name)
			for n := 0; n < nodeCount; n++ {
				if _, err := stmt.Exec(runID, n, prop.Name, float64(accessor(n))); err != nil {
					return 0, fmt.Errorf("insert node %d property %s: %w", n, prop.Name, err)
				}
			}
		default:
			// LongArray/DoubleArray properties are intermediate working state
			// (e.g. trianglecount's neighbor-id snapshot), not a final result
			// worth materializing as one scalar row per node.
		}
	}

	return runID, tx.Commit()
}

// NodeValue reads back one property's value for one node from a saved run.
func (s *Store) NodeValue(runID int64, nodeID int, property string) (float64, error) {
	var value float64
	err := s.db.QueryRow(
		`SELECT value FROM node_values WHERE run_id = ? AND node_id = ? AND property = ?`,
		runID, nodeID, property,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("read node %d property %s: %w", nodeID, property, err)
	}
	return value, nil
}

// TopN returns the nodeID/value pairs with the n largest values for
// property in a saved run, descending.
func (s *Store) TopN(runID int64, property string, n int) ([]NodeScore, error) {
	rows, err := s.db.Query(
		`SELECT node_id, value FROM node_values WHERE run_id = ? AND property = ? ORDER BY value DESC LIMIT ?`,
		runID, property, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query top %s: %w", property, err)
	}
	defer rows.Close()

	var out []NodeScore
	for rows.Next() {
		var ns NodeScore
		if err := rows.Scan(&ns.NodeID, &ns.Value); err != nil {
			return nil, err
		}
		out = append(out, ns)
	}
	return out, rows.Err()
}

// NodeScore is one row of a TopN result.
type NodeScore struct {
	NodeID int
	Value  float64
}
