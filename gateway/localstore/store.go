// Package localstore provides a gateway backed by a local SQL database so
// the site can run fully self-hosted, without the managed remote backend.
// It honours the same collection semantics as the REST gateway.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/servetdekorasyon/website/gateway"
	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// recordModel is the envelope row: all collections share one table because
// none of them is large enough to warrant a dedicated schema, and the
// gateway contract is schemaless by design.
type recordModel struct {
	bun.BaseModel `bun:"table:site_records,alias:sr"`

	ID         string    `bun:"id,pk"`
	Collection string    `bun:"collection,notnull"`
	Fields     string    `bun:"fields,notnull"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}

// Open initialises a bun database handle for the given driver. Supported
// drivers are "sqlite3" and "postgres".
func Open(driver, dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("localstore: open %s: %w", driver, err)
	}
	switch driver {
	case "sqlite3":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		sqlDB.Close()
		return nil, fmt.Errorf("localstore: unsupported driver %q", driver)
	}
}

// Store is a bun-backed gateway implementation.
type Store struct {
	db     *bun.DB
	logger interfaces.Logger
}

var _ gateway.Service = (*Store)(nil)

// New constructs a store over the supplied database handle.
func New(db *bun.DB, logger interfaces.Logger) *Store {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Store{db: db, logger: logger}
}

// EnsureSchema creates the envelope table when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*recordModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("localstore: ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Mode() gateway.Mode { return gateway.ModeLive }

func (s *Store) FetchCollection(ctx context.Context, name string, query gateway.Query) ([]gateway.Record, error) {
	var rows []recordModel
	err := s.db.NewSelect().Model(&rows).
		Where("collection = ?", name).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, &gateway.NetworkError{Op: "fetch", Collection: name, Err: err}
	}

	records := make([]gateway.Record, 0, len(rows))
	for _, row := range rows {
		record, err := rowToRecord(row)
		if err != nil {
			s.logger.Warn("localstore.decode_failed", "collection", name, "id", row.ID, "error", err)
			continue
		}
		records = append(records, record)
	}
	return query.Apply(records), nil
}

func (s *Store) InsertRecord(ctx context.Context, name string, fields map[string]any) (*gateway.Record, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	stored := make(map[string]any, len(fields)+2)
	for key, value := range fields {
		stored[key] = value
	}
	stored["id"] = id
	if _, ok := stored["created_at"]; !ok {
		stored["created_at"] = now.Format(time.RFC3339)
	}

	encoded, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("localstore: encode %s record: %w", name, err)
	}

	row := recordModel{ID: id, Collection: name, Fields: string(encoded), CreatedAt: now}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return nil, &gateway.RejectedError{Op: "insert", Collection: name, Message: err.Error()}
	}

	return &gateway.Record{Collection: name, ID: id, Fields: stored}, nil
}

func (s *Store) UpdateRecord(ctx context.Context, name, id string, fields map[string]any) error {
	var row recordModel
	err := s.db.NewSelect().Model(&row).
		Where("collection = ?", name).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return &gateway.RejectedError{Op: "update", Collection: name, Message: fmt.Sprintf("no record with id %s", id)}
		}
		return &gateway.NetworkError{Op: "update", Collection: name, Err: err}
	}

	record, err := rowToRecord(row)
	if err != nil {
		return fmt.Errorf("localstore: decode %s record: %w", name, err)
	}
	for key, value := range fields {
		record.Fields[key] = value
	}

	encoded, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("localstore: encode %s record: %w", name, err)
	}
	row.Fields = string(encoded)

	if _, err := s.db.NewUpdate().Model(&row).Column("fields").WherePK().Exec(ctx); err != nil {
		return &gateway.RejectedError{Op: "update", Collection: name, Message: err.Error()}
	}
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, name, id string) error {
	result, err := s.db.NewDelete().Model((*recordModel)(nil)).
		Where("collection = ?", name).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return &gateway.NetworkError{Op: "delete", Collection: name, Err: err}
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &gateway.RejectedError{Op: "delete", Collection: name, Message: fmt.Sprintf("no record with id %s", id)}
	}
	return nil
}

func (s *Store) ResolveOne(ctx context.Context, name, matchField string, matchValue any) (*gateway.Record, error) {
	records, err := s.FetchCollection(ctx, name, gateway.Query{}.Where(matchField, matchValue).Take(1))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, gateway.ErrNotFound
	}
	return &records[0], nil
}

func rowToRecord(row recordModel) (gateway.Record, error) {
	fields := map[string]any{}
	if err := json.Unmarshal([]byte(row.Fields), &fields); err != nil {
		return gateway.Record{}, err
	}
	return gateway.Record{Collection: row.Collection, ID: row.ID, Fields: fields}, nil
}
