// Package patients persists models.Patient records in the "patient" table.
package patients

import (
	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

// Repository describes CRUD operations for patients.
type Repository interface {
	storage.Repository[models.Patient]
}

// SQLRepository implements Repository over a dbx.DBTX.
type SQLRepository struct {
	*storage.Store[models.Patient]
}

// NewSQLRepository returns a SQLRepository bound to db.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{Store: storage.New(db, dialect, Mapping)}
}
