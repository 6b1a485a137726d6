package treatments

import (
	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

// Mapping lays out a Treatment in the "treatment" table.
var Mapping = storage.Mapping[models.Treatment]{
	Entity: "treatment",
	Table:  "treatment",
	Key:    "tid",
	Columns: []string{"pid", "cid", "treatment_date", "begin", "end",
		"description", "remark", "locked", "datecreated"},
	Values: func(t *models.Treatment) []any {
		return []any{t.PatientID, t.CaregiverID, dates.FormatDate(t.Date),
			dates.FormatTime(t.Begin), dates.FormatTime(t.End),
			t.Description, t.Remarks, t.Locked, t.DateCreated}
	},
	Scan:  scan,
	ID:    func(t *models.Treatment) int64 { return t.ID },
	SetID: func(t *models.Treatment, id int64) { t.ID = id },
}

func scan(row storage.Scanner) (*models.Treatment, error) {
	var (
		t                models.Treatment
		date, begin, end string
	)
	if err := row.Scan(&t.ID, &t.PatientID, &t.CaregiverID, &date, &begin, &end,
		&t.Description, &t.Remarks, &t.Locked, &t.DateCreated); err != nil {
		return nil, err
	}

	var err error
	if t.Date, err = dates.ParseDate(date); err != nil {
		return nil, err
	}
	if t.Begin, err = dates.ParseTime(begin); err != nil {
		return nil, err
	}
	if t.End, err = dates.ParseTime(end); err != nil {
		return nil, err
	}
	return &t, nil
}
