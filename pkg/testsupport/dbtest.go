package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewSQLiteMemoryDB opens a throwaway in-memory SQLite database wrapped in
// bun, for exercising the local store without touching disk.
func NewSQLiteMemoryDB() (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqlDB, sqlitedialect.New()), nil
}
