package caregivers

import (
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

var Mapping = storage.Mapping[models.Caregiver]{
	Entity:  "caregiver",
	Table:   "caregiver",
	Key:     "cid",
	Columns: []string{"firstname", "surname", "phonenumber", "locked", "datecreated"},
	Values: func(c *models.Caregiver) []any {
		return []any{c.FirstName, c.Surname, c.PhoneNumber, c.Locked, c.DateCreated}
	},
	Scan: func(row storage.Scanner) (*models.Caregiver, error) {
		var c models.Caregiver
		if err := row.Scan(&c.ID, &c.FirstName, &c.Surname, &c.PhoneNumber, &c.Locked, &c.DateCreated); err != nil {
			return nil, err
		}
		return &c, nil
	},
	ID:    func(c *models.Caregiver) int64 { return c.ID },
	SetID: func(c *models.Caregiver, id int64) { c.ID = id },
}
