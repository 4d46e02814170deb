package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-montecarlo/internal/logger"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/internal/version"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"go.uber.org/zap"
)

const (
	resultsTable    = "results"
	schemaInfoTable = "schema_info"
)

var resultColumns = []string{
	"id",
	"experiment_id",
	"strategy",
	"n_paths",
	"mean_pnl",
	"mean_return",
	"mean_drawdown",
	"worst_drawdown",
	"mean_volatility",
	"mean_sharpe",
	"engine_version",
	"created_at",
}

// DuckDBResultStore keeps results in a DuckDB database file.
// Use ":memory:" as path for a throwaway store.
type DuckDBResultStore struct {
	db     *sql.DB
	path   string
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
	now    func() time.Time
}

// NewDuckDBResultStore opens the database at path. Call Initialize before use.
func NewDuckDBResultStore(path string, log *logger.Logger) (*DuckDBResultStore, error) {
	log = logger.OrNop(log)

	db, err := sql.Open("duckdb", path)
	if err != nil {
		log.Error("Failed to open database", zap.String("path", path), zap.Error(err))

		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to open database", err)
	}

	// Test connection to ensure database is properly initialized
	if err := db.Ping(); err != nil {
		log.Error("Failed to connect to database", zap.String("path", path), zap.Error(err))
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to connect to database", err)
	}

	return &DuckDBResultStore{
		db:     db,
		path:   path,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Initialize implements ResultStore.
func (s *DuckDBResultStore) Initialize(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New(errors.ErrCodeStoreFailed, "result store or database is nil")
	}

	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS results_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS results (
			id BIGINT PRIMARY KEY,
			experiment_id TEXT NOT NULL,
			strategy TEXT NOT NULL,
			n_paths INTEGER NOT NULL,
			mean_pnl DOUBLE NOT NULL,
			mean_return DOUBLE NOT NULL,
			mean_drawdown DOUBLE NOT NULL,
			worst_drawdown DOUBLE NOT NULL,
			mean_volatility DOUBLE NOT NULL,
			mean_sharpe DOUBLE NOT NULL,
			engine_version TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS schema_info (
			version TEXT NOT NULL
		)`,
	}

	for _, statement := range statements {
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return errors.Wrap(errors.ErrCodeStoreFailed, "failed to create schema", err)
		}
	}

	return s.checkSchemaVersion(ctx)
}

func (s *DuckDBResultStore) checkSchemaVersion(ctx context.Context) error {
	query, args, err := s.sq.Select("version").From(schemaInfoTable).Limit(1).ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to build schema version query", err)
	}

	var stored string

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		insert, insertArgs, buildErr := s.sq.Insert(schemaInfoTable).Columns("version").Values(version.SchemaVersion).ToSql()
		if buildErr != nil {
			return errors.Wrap(errors.ErrCodeStoreFailed, "failed to build schema version insert", buildErr)
		}

		if _, err := s.db.ExecContext(ctx, insert, insertArgs...); err != nil {
			return errors.Wrap(errors.ErrCodeStoreFailed, "failed to record schema version", err)
		}

		s.logger.Debug("Result store created", zap.String("path", s.path), zap.String("schema_version", version.SchemaVersion))

		return nil
	}

	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to read schema version", err)
	}

	if err := version.CheckSchemaCompatibility(version.SchemaVersion, stored); err != nil {
		s.logger.Error("Result store schema is incompatible",
			zap.String("path", s.path),
			zap.String("stored_version", stored),
			zap.String("schema_version", version.SchemaVersion),
		)

		return errors.Wrap(errors.ErrCodeStoreVersionMismatch, "result store schema is incompatible", err)
	}

	return nil
}

// Insert implements ResultStore.
func (s *DuckDBResultStore) Insert(ctx context.Context, experimentID string, record types.SummaryRecord) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New(errors.ErrCodeStoreFailed, "result store or database is nil")
	}

	// Get the next ID from the sequence
	var nextID int64

	if err := s.db.QueryRowContext(ctx, "SELECT nextval('results_id_seq')").Scan(&nextID); err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreFailed, "failed to get next ID from sequence", err)
	}

	query, args, err := s.sq.
		Insert(resultsTable).
		Columns(resultColumns...).
		Values(
			nextID,
			experimentID,
			record.Strategy,
			record.PathCount,
			record.MeanPnL,
			record.MeanReturn,
			record.MeanDrawdown,
			record.WorstDrawdown,
			record.MeanVolatility,
			record.MeanSharpe,
			version.GetVersion(),
			s.now(),
		).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreFailed, "failed to build insert", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, errors.Wrapf(errors.ErrCodeStoreFailed, err, "failed to insert summary for %s", record.Strategy)
	}

	s.logger.Debug("Stored summary",
		zap.Int64("id", nextID),
		zap.String("experiment_id", experimentID),
		zap.String("strategy", record.Strategy),
	)

	return nextID, nil
}

// LastRuns implements ResultStore.
func (s *DuckDBResultStore) LastRuns(ctx context.Context, limit int) ([]StoredRun, error) {
	if s == nil || s.db == nil {
		return nil, errors.New(errors.ErrCodeStoreFailed, "result store or database is nil")
	}

	if limit <= 0 {
		return nil, errors.InvalidParameterf("limit must be > 0, got %d", limit)
	}

	query, args, err := s.sq.
		Select(resultColumns...).
		From(resultsTable).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to query runs", err)
	}
	defer rows.Close()

	runs := []StoredRun{}

	for rows.Next() {
		var run StoredRun

		err := rows.Scan(
			&run.ID,
			&run.ExperimentID,
			&run.Strategy,
			&run.PathCount,
			&run.MeanPnL,
			&run.MeanReturn,
			&run.MeanDrawdown,
			&run.WorstDrawdown,
			&run.MeanVolatility,
			&run.MeanSharpe,
			&run.EngineVersion,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to scan run", err)
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "error iterating runs", err)
	}

	return runs, nil
}

// AggregateByStrategy implements ResultStore.
func (s *DuckDBResultStore) AggregateByStrategy(ctx context.Context) ([]StrategyAggregate, error) {
	if s == nil || s.db == nil {
		return nil, errors.New(errors.ErrCodeStoreFailed, "result store or database is nil")
	}

	query, args, err := s.sq.
		Select(
			"strategy",
			"COUNT(*) AS runs",
			"AVG(mean_return) AS avg_return",
			"AVG(mean_drawdown) AS avg_drawdown",
			"AVG(mean_sharpe) AS avg_sharpe",
			"MIN(mean_sharpe) AS worst_sharpe",
			"MAX(mean_sharpe) AS best_sharpe",
		).
		From(resultsTable).
		GroupBy("strategy").
		OrderBy("avg_sharpe DESC", "strategy ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to aggregate runs", err)
	}
	defer rows.Close()

	aggregates := []StrategyAggregate{}

	for rows.Next() {
		var aggregate StrategyAggregate

		var runs int64

		err := rows.Scan(
			&aggregate.Strategy,
			&runs,
			&aggregate.AvgReturn,
			&aggregate.AvgDrawdown,
			&aggregate.AvgSharpe,
			&aggregate.WorstSharpe,
			&aggregate.BestSharpe,
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to scan aggregate", err)
		}

		aggregate.Runs = int(runs)
		aggregates = append(aggregates, aggregate)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "error iterating aggregates", err)
	}

	return aggregates, nil
}

// Close implements ResultStore.
func (s *DuckDBResultStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to close database", err)
	}

	return nil
}
