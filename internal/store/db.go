package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-econ-trends/internal/model"
)

// Store records every dataset request and its per-country failures in
// SQLite, so operators can see what was asked for, what came from the
// cache, and which countries degraded to empty results.
type Store struct {
	db *sql.DB
}

// QueryRecord is one row of request history
type QueryRecord struct {
	ID          string    `json:"id"`
	Indicator   string    `json:"indicator"`
	Countries   []string  `json:"countries"`
	StartYear   int       `json:"start_year"`
	EndYear     int       `json:"end_year"`
	CacheHit    bool      `json:"cache_hit"`
	RecordCount int       `json:"record_count"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// QueryError is one country's recorded fetch failure
type QueryError struct {
	QueryID      string    `json:"query_id"`
	CountryCode  string    `json:"country_code"`
	ErrorMessage string    `json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
}

// Open opens (or creates) the SQLite database and its tables
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	queryTable := `
	CREATE TABLE IF NOT EXISTS queries (
		id TEXT PRIMARY KEY,
		indicator TEXT,
		countries TEXT,
		start_year INTEGER,
		end_year INTEGER,
		cache_hit INTEGER,
		record_count INTEGER,
		status TEXT,
		created_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS query_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query_id TEXT,
		country_code TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(queryTable); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(errorTable); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveQuery stores one request-history row
func (s *Store) SaveQuery(id string, q model.Query, cacheHit bool, recordCount int, status string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO queries (id, indicator, countries, start_year, end_year, cache_hit, record_count, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, q.Indicator, strings.Join(q.NormalizedCountries(), ","),
		q.StartYear, q.EndYear, cacheHit, recordCount, status, now,
	)
	return err
}

// SaveQueryError records a per-country fetch failure for a query
func (s *Store) SaveQueryError(queryID, countryCode string, message string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO query_errors (query_id, country_code, error_message, created_at) VALUES (?, ?, ?, ?)`,
		queryID, countryCode, message, now,
	)
	return err
}

// ListQueries returns recent request history, newest first
func (s *Store) ListQueries(limit int) ([]QueryRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, indicator, countries, start_year, end_year, cache_hit, record_count, status, created_at
		 FROM queries ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var rec QueryRecord
		var countries string
		if err := rows.Scan(&rec.ID, &rec.Indicator, &countries, &rec.StartYear, &rec.EndYear,
			&rec.CacheHit, &rec.RecordCount, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if countries != "" {
			rec.Countries = strings.Split(countries, ",")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetQuery fetches one request-history row by ID
func (s *Store) GetQuery(id string) (QueryRecord, error) {
	var rec QueryRecord
	var countries string
	err := s.db.QueryRow(
		`SELECT id, indicator, countries, start_year, end_year, cache_hit, record_count, status, created_at
		 FROM queries WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Indicator, &countries, &rec.StartYear, &rec.EndYear,
			&rec.CacheHit, &rec.RecordCount, &rec.Status, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return QueryRecord{}, fmt.Errorf("query %s not found", id)
	}
	if err != nil {
		return QueryRecord{}, err
	}
	if countries != "" {
		rec.Countries = strings.Split(countries, ",")
	}
	return rec, nil
}

// GetQueryErrors returns the recorded per-country failures for a query
func (s *Store) GetQueryErrors(queryID string) ([]QueryError, error) {
	rows, err := s.db.Query(
		`SELECT query_id, country_code, error_message, created_at
		 FROM query_errors WHERE query_id = ? ORDER BY created_at`, queryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var failures []QueryError
	for rows.Next() {
		var qe QueryError
		if err := rows.Scan(&qe.QueryID, &qe.CountryCode, &qe.ErrorMessage, &qe.CreatedAt); err != nil {
			return nil, err
		}
		failures = append(failures, qe)
	}
	return failures, rows.Err()
}
