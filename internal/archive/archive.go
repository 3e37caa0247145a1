// Package archive keeps finished battle reports in a SQLite database.
//
// Reports are content addressed: saving the same report twice is a no-op.
package archive

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/codec"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/version"
)

//go:embed schema.sql
var schemaSQL string

var (
	ErrNotFound  = errors.New("report not found")
	ErrMissingID = errors.New("report has no id")
)

// Store is a SQLite-backed report archive
type Store struct {
	db  *sql.DB
	log *zap.Logger
	now func() time.Time
}

// Summary is the indexed part of an archived report
type Summary struct {
	ID            string
	Mission       models.MissionKind
	Winner        models.Winner
	Outcome       models.Outcome
	Rounds        int
	EngineVersion string
	CreatedAt     time.Time
}

// Entry is a full archived report. Intel is set for successful espionage.
type Entry struct {
	Summary
	Report *models.BattleReport
	Intel  *models.Intel
}

// Open opens (creating if needed) the archive at path. An empty path opens a
// private in-memory database.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var dsn string
	if path == "" {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	} else {
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
			path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == "" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	log.Debug("opened report archive", zap.String("path", path))
	return &Store{db: db, log: log, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBattle archives an attack report. It reports false when a report with
// the same id was already stored.
func (s *Store) SaveBattle(ctx context.Context, report *models.BattleReport) (bool, error) {
	return s.save(ctx, models.MissionAttack, report, nil)
}

// SaveEspionage archives an espionage report together with its intel.
func (s *Store) SaveEspionage(ctx context.Context, report *models.EspionageReport) (bool, error) {
	if report == nil {
		return false, ErrMissingID
	}
	return s.save(ctx, models.MissionEspionage, &report.Battle, report.Intel)
}

func (s *Store) save(ctx context.Context, kind models.MissionKind, report *models.BattleReport, intel *models.Intel) (bool, error) {
	if report == nil || report.ID == "" {
		return false, ErrMissingID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const insertReport = `
		INSERT INTO battle_reports (id, mission, winner, outcome, rounds, engine_version, created_at, body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`
	res, err := tx.ExecContext(ctx, insertReport,
		report.ID,
		string(kind),
		string(report.Winner),
		string(report.Outcome),
		report.RoundsFought(),
		version.Version().Core(),
		s.now().UTC().Format(time.RFC3339Nano),
		codec.EncodeBattleReport(report),
	)
	if err != nil {
		return false, fmt.Errorf("insert report %s: %w", report.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		s.log.Debug("report already archived", zap.String("id", report.ID))
		return false, nil
	}

	if intel != nil {
		const insertIntel = `INSERT INTO espionage_intel (report_id, intel) VALUES (?, ?)`
		if _, err := tx.ExecContext(ctx, insertIntel, report.ID, codec.EncodeIntel(intel)); err != nil {
			return false, fmt.Errorf("insert intel %s: %w", report.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	s.log.Debug("archived report",
		zap.String("id", report.ID),
		zap.String("mission", string(kind)),
		zap.String("winner", string(report.Winner)))
	return true, nil
}

// Get loads one report by id
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	const query = `
		SELECT r.id, r.mission, r.winner, r.outcome, r.rounds, r.engine_version, r.created_at, r.body, i.intel
		FROM battle_reports r
		LEFT JOIN espionage_intel i ON i.report_id = r.id
		WHERE r.id = ?`

	var (
		e       Entry
		created string
		body    []byte
		intel   []byte
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Mission, &e.Winner, &e.Outcome, &e.Rounds, &e.EngineVersion, &created, &body, &intel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query report %s: %w", id, err)
	}

	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("report %s: bad timestamp: %w", id, err)
	}
	if e.Report, err = codec.DecodeBattleReport(body); err != nil {
		return nil, fmt.Errorf("report %s: %w", id, err)
	}
	if intel != nil {
		if e.Intel, err = codec.DecodeIntel(intel); err != nil {
			return nil, fmt.Errorf("report %s: %w", id, err)
		}
	}
	return &e, nil
}

// List returns report summaries, newest first. An empty kind lists all
// missions; limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, kind models.MissionKind, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}
	const query = `
		SELECT id, mission, winner, outcome, rounds, engine_version, created_at
		FROM battle_reports
		WHERE ? = '' OR mission = ?
		ORDER BY seq DESC
		LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, string(kind), string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			created string
		)
		if err := rows.Scan(&sum.ID, &sum.Mission, &sum.Winner, &sum.Outcome, &sum.Rounds, &sum.EngineVersion, &created); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("report %s: bad timestamp: %w", sum.ID, err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes a report and its intel
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM battle_reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
