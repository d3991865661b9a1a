// Package migrations lists the schema migrations in order.
package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/paypay-hub/paypay-admin-bot/migrations/internal/m20260829"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID:       m20260829.ID,
			Migrate:  m20260829.Migrate,
			Rollback: m20260829.Rollback,
		},
	}
}
