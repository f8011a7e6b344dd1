// Package db provides database utilities shared by the repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing a transaction.
type txKey struct{}

// GetTxFromContext returns the transaction from context if one is present,
// otherwise the default DB bound to the context. Compound operations here
// intentionally run as independent statements (no spanning transaction), so
// in practice this resolves to the default DB; repositories still go through
// it so a transaction can be threaded in without touching them.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
