package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned when no row has the requested ID.
var ErrNotFound = errors.New("record not found")

var recordColumns = []string{"id", "class", "key", "path", "published", "data", "created_at", "updated_at"}

// Get loads the record with the given ID.
func (db *DB) Get(ctx context.Context, id int) (*Record, error) {
	query, args := entsql.Dialect(db.drv.Dialect()).
		Select(recordColumns...).
		From(entsql.Table(tableDataObjects)).
		Where(entsql.EQ("id", id)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := db.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("failed to query data object: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read data object: %w", err)
		}

		return nil, ErrNotFound
	}

	rec, err := scanRecord(rows)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Save inserts the record, or updates it when the ID already exists.
// A zero ID lets the database assign one, which is written back to rec.
func (db *DB) Save(ctx context.Context, rec *Record) error {
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}

	rec.UpdatedAt = now

	if rec.Path == "" {
		rec.Path = "/"
	}

	insert := entsql.Dialect(db.drv.Dialect()).
		Insert(tableDataObjects).
		Columns("class", "key", "path", "published", "data", "created_at", "updated_at").
		Values(rec.Class, rec.Key, rec.Path, rec.Published, nullableData(rec.Data), rec.CreatedAt.UnixMilli(), rec.UpdatedAt.UnixMilli())

	if rec.ID != 0 {
		insert = entsql.Dialect(db.drv.Dialect()).
			Insert(tableDataObjects).
			Columns(recordColumns...).
			Values(rec.ID, rec.Class, rec.Key, rec.Path, rec.Published, nullableData(rec.Data), rec.CreatedAt.UnixMilli(), rec.UpdatedAt.UnixMilli()).
			OnConflict(
				entsql.ConflictColumns("id"),
				entsql.ResolveWith(func(u *entsql.UpdateSet) {
					u.SetExcluded("class")
					u.SetExcluded("key")
					u.SetExcluded("path")
					u.SetExcluded("published")
					u.SetExcluded("data")
					u.SetExcluded("updated_at")
				}),
			)

		query, args := insert.Query()
		if err := db.drv.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("failed to save data object: %w", err)
		}

		return nil
	}

	if db.drv.Dialect() == dialect.Postgres {
		query, args := insert.Returning("id").Query()

		rows := &entsql.Rows{}
		if err := db.drv.Query(ctx, query, args, rows); err != nil {
			return fmt.Errorf("failed to create data object: %w", err)
		}
		defer rows.Close()

		id, err := entsql.ScanInt(rows)
		if err != nil {
			return fmt.Errorf("failed to read data object id: %w", err)
		}

		rec.ID = id

		return nil
	}

	query, args := insert.Query()

	var res sql.Result
	if err := db.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("failed to create data object: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read data object id: %w", err)
	}

	rec.ID = int(id)

	return nil
}

// Delete removes the record, it is not an error if it does not exist.
func (db *DB) Delete(ctx context.Context, id int) error {
	query, args := entsql.Dialect(db.drv.Dialect()).
		Delete(tableDataObjects).
		Where(entsql.EQ("id", id)).
		Query()

	if err := db.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("failed to delete data object: %w", err)
	}

	return nil
}

func scanRecord(rows *entsql.Rows) (*Record, error) {
	var (
		rec       Record
		data      sql.NullString
		createdAt int64
		updatedAt int64
	)

	if err := rows.Scan(&rec.ID, &rec.Class, &rec.Key, &rec.Path, &rec.Published, &data, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan data object: %w", err)
	}

	if data.Valid && data.String != "" {
		rec.Data = []byte(data.String)
	}

	rec.CreatedAt = time.UnixMilli(createdAt)
	rec.UpdatedAt = time.UnixMilli(updatedAt)

	return &rec, nil
}

func nullableData(data []byte) any {
	if len(data) == 0 {
		return nil
	}

	return string(data)
}
