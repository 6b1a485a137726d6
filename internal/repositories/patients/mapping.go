package patients

import (
	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

// Mapping lays out a Patient in the "patient" table.
var Mapping = storage.Mapping[models.Patient]{
	Entity:  "patient",
	Table:   "patient",
	Key:     "pid",
	Columns: []string{"firstname", "surname", "dateOfBirth", "carelevel", "roomnumber", "locked", "datecreated"},
	Values: func(p *models.Patient) []any {
		return []any{p.FirstName, p.Surname, dates.FormatDate(p.DateOfBirth),
			p.CareLevel, p.RoomNumber, p.Locked, p.DateCreated}
	},
	Scan:  scan,
	ID:    func(p *models.Patient) int64 { return p.ID },
	SetID: func(p *models.Patient, id int64) { p.ID = id },
}

func scan(row storage.Scanner) (*models.Patient, error) {
	var (
		p   models.Patient
		dob string
	)
	if err := row.Scan(&p.ID, &p.FirstName, &p.Surname, &dob,
		&p.CareLevel, &p.RoomNumber, &p.Locked, &p.DateCreated); err != nil {
		return nil, err
	}

	t, err := dates.ParseDate(dob)
	if err != nil {
		return nil, err
	}
	p.DateOfBirth = t
	return &p, nil
}
