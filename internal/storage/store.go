package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/trajsim/internal/ballistics"
)

var ErrNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	vacuumFile   = "vacuum.csv"
	dragFile     = "drag.csv"
	catalogFile  = "runs.db"
)

// Store keeps one directory per run plus a SQLite catalog for listing.
type Store struct {
	baseDir string
	db      *sql.DB
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Label         string             `json:"label"`
	Timestamp     time.Time          `json:"timestamp"`
	Integrator    string             `json:"integrator"`
	Params        ballistics.Params  `json:"params"`
	VacuumSummary ballistics.Summary `json:"vacuum_summary"`
	DragSummary   ballistics.Summary `json:"drag_summary"`
	VacuumSamples int                `json:"vacuum_samples"`
	DragSamples   int                `json:"drag_samples"`
}

// Open creates baseDir if needed and opens its catalog.
func Open(ctx context.Context, baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", baseDir, err)
	}
	db, err := openCatalog(ctx, filepath.Join(baseDir, catalogFile))
	if err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir, db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Dir() string { return s.baseDir }

// Save writes the run directory and its catalog row, returning the run ID.
func (s *Store) Save(ctx context.Context, label, integrator string, cmp *ballistics.Comparison) (id string, err error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", slug(label), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:            runID,
		Label:         label,
		Timestamp:     now,
		Integrator:    integrator,
		Params:        cmp.Params,
		VacuumSummary: cmp.VacuumSummary,
		DragSummary:   cmp.DragSummary,
		VacuumSamples: cmp.Vacuum.Len(),
		DragSamples:   cmp.Drag.Len(),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeCSVFile(filepath.Join(runDir, vacuumFile), cmp.Vacuum); err != nil {
		return "", err
	}
	if err := writeCSVFile(filepath.Join(runDir, dragFile), cmp.Drag); err != nil {
		return "", err
	}

	if err := s.insert(ctx, meta); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns catalogued runs, newest first.
func (s *Store) List(ctx context.Context) ([]RunMetadata, error) {
	return s.list(ctx)
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads one stored trajectory; kind is "vacuum" or "drag".
func (s *Store) LoadTrajectory(runID, kind string) (ballistics.Trajectory, error) {
	var name string
	switch kind {
	case "vacuum":
		name = vacuumFile
	case "drag":
		name = dragFile
	default:
		return nil, fmt.Errorf("storage: unknown trajectory kind %q", kind)
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	return ReadTrajectoryCSV(file)
}

// LoadComparison rebuilds the comparison saved under runID.
func (s *Store) LoadComparison(runID string) (*RunMetadata, *ballistics.Comparison, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	vac, err := s.LoadTrajectory(runID, "vacuum")
	if err != nil {
		return nil, nil, err
	}
	drag, err := s.LoadTrajectory(runID, "drag")
	if err != nil {
		return nil, nil, err
	}
	cmp, err := ballistics.NewComparison(meta.Params, vac, drag)
	if err != nil {
		return nil, nil, err
	}
	return meta, cmp, nil
}

// Delete removes the run directory and its catalog row.
func (s *Store) Delete(ctx context.Context, runID string) error {
	n, err := s.remove(ctx, runID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	return os.RemoveAll(filepath.Join(s.baseDir, runID))
}

// slug keeps run directory names to [a-z0-9_-].
func slug(label string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, label)
	if out == "" {
		return "run"
	}
	return out
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSVFile(path string, traj ballistics.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTrajectoryCSV(f, traj); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
