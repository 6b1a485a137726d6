package cli

import (
	"fmt"
	"time"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/models"
)

// prompts reads one line per label.
func (c *CLI) prompts(labels ...string) ([]string, error) {
	vals := make([]string, len(labels))
	for i, l := range labels {
		v, err := GetSimpleText(c.reader, l, c.out)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", common.ErrorValidation, err)
}

func (c *CLI) readPatient() (*models.Patient, error) {
	v, err := c.prompts("First name", "Surname")
	if err != nil {
		return nil, err
	}
	dob, err := GetDate(c.reader, "Date of birth", c.out)
	if err != nil {
		return nil, invalid(err)
	}
	rest, err := c.prompts("Care level", "Room number")
	if err != nil {
		return nil, err
	}
	return &models.Patient{
		Person:      models.Person{FirstName: v[0], Surname: v[1]},
		DateOfBirth: dob,
		CareLevel:   rest[0],
		RoomNumber:  rest[1],
	}, nil
}

func (c *CLI) readCaregiver() (*models.Caregiver, error) {
	v, err := c.prompts("First name", "Surname", "Phone number")
	if err != nil {
		return nil, err
	}
	return &models.Caregiver{
		Person:      models.Person{FirstName: v[0], Surname: v[1]},
		PhoneNumber: v[2],
	}, nil
}

func (c *CLI) readTreatment() (*models.Treatment, error) {
	pid, err := GetID(c.reader, "Patient id", c.out)
	if err != nil {
		return nil, invalid(err)
	}
	cid, err := GetID(c.reader, "Caregiver id", c.out)
	if err != nil {
		return nil, invalid(err)
	}
	date, err := GetDate(c.reader, "Date", c.out)
	if err != nil {
		return nil, invalid(err)
	}
	begin, err := GetTime(c.reader, "Begin", c.out)
	if err != nil {
		return nil, invalid(err)
	}
	end, err := GetTime(c.reader, "End", c.out)
	if err != nil {
		return nil, invalid(err)
	}
	v, err := c.prompts("Description", "Remarks")
	if err != nil {
		return nil, err
	}
	return &models.Treatment{
		PatientID:   pid,
		CaregiverID: cid,
		Date:        date,
		Begin:       begin,
		End:         end,
		Description: v[0],
		Remarks:     v[1],
	}, nil
}

// keep prompts for a new value of a field. An empty answer keeps cur.
func (c *CLI) keep(label, cur string) (string, error) {
	v, err := GetSimpleText(c.reader, fmt.Sprintf("%s [%s]", label, cur), c.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return cur, nil
	}
	return v, nil
}

func (c *CLI) keepDate(label string, cur time.Time) (time.Time, error) {
	s, err := c.keep(label+" (YYYY-MM-DD)", dates.FormatDate(cur))
	if err != nil {
		return time.Time{}, err
	}
	d, err := dates.ParseDate(s)
	if err != nil {
		return time.Time{}, invalid(err)
	}
	return d, nil
}

func (c *CLI) keepTime(label string, cur time.Time) (time.Time, error) {
	s, err := c.keep(label+" (HH:MM)", dates.FormatTime(cur))
	if err != nil {
		return time.Time{}, err
	}
	tm, err := dates.ParseTime(s)
	if err != nil {
		return time.Time{}, invalid(err)
	}
	return tm, nil
}

func (c *CLI) editPerson(p *models.Person) (err error) {
	if p.FirstName, err = c.keep("First name", p.FirstName); err != nil {
		return err
	}
	p.Surname, err = c.keep("Surname", p.Surname)
	return err
}

func (c *CLI) editPatient(p *models.Patient) (err error) {
	if err = c.editPerson(&p.Person); err != nil {
		return err
	}
	if p.DateOfBirth, err = c.keepDate("Date of birth", p.DateOfBirth); err != nil {
		return err
	}
	if p.CareLevel, err = c.keep("Care level", p.CareLevel); err != nil {
		return err
	}
	p.RoomNumber, err = c.keep("Room number", p.RoomNumber)
	return err
}

func (c *CLI) editCaregiver(cg *models.Caregiver) (err error) {
	if err = c.editPerson(&cg.Person); err != nil {
		return err
	}
	cg.PhoneNumber, err = c.keep("Phone number", cg.PhoneNumber)
	return err
}

// editTreatment changes the schedule and notes. Patient and caregiver stay.
func (c *CLI) editTreatment(t *models.Treatment) (err error) {
	if t.Date, err = c.keepDate("Date", t.Date); err != nil {
		return err
	}
	if t.Begin, err = c.keepTime("Begin", t.Begin); err != nil {
		return err
	}
	if t.End, err = c.keepTime("End", t.End); err != nil {
		return err
	}
	if t.Description, err = c.keep("Description", t.Description); err != nil {
		return err
	}
	t.Remarks, err = c.keep("Remarks", t.Remarks)
	return err
}
