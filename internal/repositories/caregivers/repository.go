// Package caregivers persists models.Caregiver records in the "caregiver" table.
package caregivers

import (
	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

type Repository interface {
	storage.Repository[models.Caregiver]
}

type SQLRepository struct {
	*storage.Store[models.Caregiver]
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{Store: storage.New(db, dialect, Mapping)}
}
