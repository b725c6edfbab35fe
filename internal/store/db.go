package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/looplj/objecthub/internal/log"
	_ "github.com/looplj/objecthub/internal/pkg/sqlite"
)

const tableDataObjects = "data_objects"

var (
	dataObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class", Type: field.TypeString, Size: 64},
		{Name: "key", Type: field.TypeString, Size: 255},
		{Name: "path", Type: field.TypeString, Size: 1024, Default: "/"},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "data", Type: field.TypeString, Size: 2147483647, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
	}

	dataObjectsTable = &schema.Table{
		Name:       tableDataObjects,
		Columns:    dataObjectsColumns,
		PrimaryKey: []*schema.Column{dataObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dataobject_class",
				Unique:  false,
				Columns: []*schema.Column{dataObjectsColumns[1]},
			},
		},
	}
)

// DB is the data object storage backed by an ent SQL driver.
type DB struct {
	drv dialect.Driver
}

// Open connects to the configured database.
func Open(cfg Config) (*DB, error) {
	var driverName, dbDialect string

	switch cfg.Dialect {
	case "postgres", "pgx", "postgresdb", "pg", "postgresql":
		driverName, dbDialect = "pgx", dialect.Postgres
	case "sqlite3", "sqlite":
		driverName, dbDialect = "sqlite3", dialect.SQLite
	case "mysql", "tidb":
		driverName, dbDialect = "mysql", dialect.MySQL
	default:
		return nil, fmt.Errorf("invalid dialect: %s", cfg.Dialect)
	}

	sqlDB, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	var drv dialect.Driver = entsql.OpenDB(dbDialect, sqlDB)
	if cfg.Debug {
		drv = dialect.DebugWithContext(drv, func(ctx context.Context, args ...any) {
			log.Debug(ctx, "sql", log.Any("query", args))
		})
	}

	return &DB{drv: drv}, nil
}

// Migrate creates or upgrades the data_objects table.
func (db *DB) Migrate(ctx context.Context) error {
	m, err := schema.NewMigrate(db.drv,
		schema.WithForeignKeys(false),
		schema.WithDropIndex(true),
		schema.WithDropColumn(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate: %w", err)
	}

	if err := m.Create(ctx, dataObjectsTable); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}

func (db *DB) Dialect() string {
	return db.drv.Dialect()
}

func (db *DB) Close() error {
	return db.drv.Close()
}
