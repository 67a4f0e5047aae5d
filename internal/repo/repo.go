package repo

import (
	"context"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

// runInTx executes the given insert steps inside a single transaction on a
// dedicated connection: commit when every step succeeds, rollback on the
// first failure. The connection goes back to the pool either way.
func (r *GormRepo) runInTx(ctx context.Context, steps ...func(tx *gorm.DB) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range steps {
			if err := step(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
