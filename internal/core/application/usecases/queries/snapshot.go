// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and return read models built with raw SQL.
package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// inSnapshot runs fn in a read-only REPEATABLE READ transaction, so every
// statement fn issues sees the same committed state of the database.
func inSnapshot(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
}
