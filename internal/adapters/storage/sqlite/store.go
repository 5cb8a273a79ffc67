// Package sqlite persiste el estado de los repos en memoria como
// snapshots JSON en una sola tabla SQLite. Después de cada mutación
// exitosa se vuelca el estado completo; al abrir se recarga.
// Es el modo de persistencia single-node sin Postgres.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // driver sqlite en Go puro, sin cgo

	"animal-shelter-api/internal/adapters/storage/memory"
	"animal-shelter-api/internal/domain/adoptions"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/reports"
	"animal-shelter-api/internal/domain/treatments"
	"animal-shelter-api/internal/domain/users"
)

const (
	bucketUsers      = "users"
	bucketAnimals    = "animals"
	bucketAdoptions  = "adoptions"
	bucketReports    = "reports"
	bucketTreatments = "treatments"
)

type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex

	users      *memory.UserRepo
	animals    *memory.AnimalRepo
	adoptions  *memory.AdoptionRepo
	reports    *memory.ReportRepo
	treatments *memory.TreatmentRepo
}

func Open(path string) (*Store, error) {
	if path == "" {
		path = "shelter.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	s := &Store{
		db:         db,
		path:       path,
		users:      memory.NewUserRepo(),
		animals:    memory.NewAnimalRepo(),
		adoptions:  memory.NewAdoptionRepo(),
		reports:    memory.NewReportRepo(),
		treatments: memory.NewTreatmentRepo(),
	}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path devuelve la ruta del archivo sqlite configurado.
func (s *Store) Path() string { return s.path }

// Users y compañía devuelven repos que persisten tras cada mutación.
func (s *Store) Users() users.Repository           { return &usersRepo{s} }
func (s *Store) Animals() animals.Repository       { return &animalsRepo{s} }
func (s *Store) Adoptions() adoptions.Repository   { return &adoptionsRepo{s} }
func (s *Store) Reports() reports.Repository       { return &reportsRepo{s} }
func (s *Store) Treatments() treatments.Repository { return &treatmentsRepo{s} }

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan state: %w", err)
		}

		switch bucket {
		case bucketUsers:
			var items []users.User
			if err := json.Unmarshal(payload, &items); err != nil {
				return fmt.Errorf("decode users: %w", err)
			}
			s.users.Restore(items)
		case bucketAnimals:
			var items []animals.Animal
			if err := json.Unmarshal(payload, &items); err != nil {
				return fmt.Errorf("decode animals: %w", err)
			}
			s.animals.Restore(items)
		case bucketAdoptions:
			var items []adoptions.AdoptionRequest
			if err := json.Unmarshal(payload, &items); err != nil {
				return fmt.Errorf("decode adoptions: %w", err)
			}
			s.adoptions.Restore(items)
		case bucketReports:
			var items []reports.RescueReport
			if err := json.Unmarshal(payload, &items); err != nil {
				return fmt.Errorf("decode reports: %w", err)
			}
			s.reports.Restore(items)
		case bucketTreatments:
			var items []treatments.TreatmentRecord
			if err := json.Unmarshal(payload, &items); err != nil {
				return fmt.Errorf("decode treatments: %w", err)
			}
			s.treatments.Restore(items)
		}
	}
	return rows.Err()
}

func (s *Store) persist() (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	buckets := []struct {
		name string
		data any
	}{
		{bucketUsers, s.users.Snapshot()},
		{bucketAnimals, s.animals.Snapshot()},
		{bucketAdoptions, s.adoptions.Snapshot()},
		{bucketReports, s.reports.Snapshot()},
		{bucketTreatments, s.treatments.Snapshot()},
	}
	for _, b := range buckets {
		payload, err := json.Marshal(b.data)
		if err != nil {
			retErr = fmt.Errorf("encode %s: %w", b.name, err)
			return retErr
		}
		if _, err := tx.Exec(
			`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
			b.name, payload,
		); err != nil {
			retErr = fmt.Errorf("upsert %s: %w", b.name, err)
			return retErr
		}
	}
	return tx.Commit()
}
