// Package treatments persists models.Treatment records in the "treatment"
// table. Besides the shared record operations it lists the treatments of one
// patient or of one caregiver.
package treatments

import (
	"context"

	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

// Repository describes CRUD and lookup operations for treatments.
type Repository interface {
	storage.Repository[models.Treatment]

	// ReadByPatient returns the treatments given to the patient pid.
	ReadByPatient(ctx context.Context, pid int64) ([]*models.Treatment, error)

	// ReadByCaregiver returns the treatments given by the caregiver cid.
	ReadByCaregiver(ctx context.Context, cid int64) ([]*models.Treatment, error)
}

// SQLRepository implements Repository over a dbx.DBTX.
type SQLRepository struct {
	*storage.Store[models.Treatment]
}

// NewSQLRepository returns a SQLRepository bound to db.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{Store: storage.New(db, dialect, Mapping)}
}

func (r *SQLRepository) ReadByPatient(ctx context.Context, pid int64) ([]*models.Treatment, error) {
	return r.Where(ctx, `"pid" = ?`, pid)
}

func (r *SQLRepository) ReadByCaregiver(ctx context.Context, cid int64) ([]*models.Treatment, error) {
	return r.Where(ctx, `"cid" = ?`, cid)
}
