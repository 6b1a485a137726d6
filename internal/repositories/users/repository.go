// Package users persists back office accounts in the "user" table.
package users

import (
	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

// Repository describes CRUD operations for users. Authentication scans
// ReadAll rather than querying by email.
type Repository interface {
	storage.Repository[models.User]
}

type SQLRepository struct {
	*storage.Store[models.User]
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{Store: storage.New(db, dialect, Mapping)}
}

// Mapping lays out a User in the "user" table. The password column holds the
// encoded hash.
var Mapping = storage.Mapping[models.User]{
	Entity:  "user",
	Table:   "user",
	Key:     "id",
	Columns: []string{"email", "password", "status"},
	Values: func(u *models.User) []any {
		return []any{u.Email, u.PasswordHash, u.Status}
	},
	Scan: func(row storage.Scanner) (*models.User, error) {
		var u models.User
		if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Status); err != nil {
			return nil, err
		}
		return &u, nil
	},
	ID:    func(u *models.User) int64 { return u.ID },
	SetID: func(u *models.User, id int64) { u.ID = id },
}
