// internal/repository/repository.go
package repository

import (
	"log/slog"

	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// dbFrom resolves the handle a statement should run on: the transaction's
// when tx is one of ours, the base handle otherwise (including nil tx).
func dbFrom(db *gorm.DB, tx Transaction) *gorm.DB {
	if gt, ok := tx.(*gormTransaction); ok {
		return gt.tx
	}
	return db
}
