package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hitec/nhplus/internal/cryptox"
	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/models"
)

// SeedUser is a demo account with its plain password.
type SeedUser struct {
	Email    string
	Password string
	Status   int
}

// DemoUsers are created by Seed.
var DemoUsers = []SeedUser{
	{Email: "user3@gmail.com", Password: "333333", Status: 1},
	{Email: "user2@gmail.com", Password: "222222", Status: 0},
}

// Seed inserts the demo patients, caregivers, treatments and users in one
// transaction. Records without a fixed creation date are stamped with the
// calendar date of now. The "Delete" / "Not delete" fixtures are dated
// 2001-01-01 and 2020-01-01 to exercise the retention guard.
func Seed(ctx context.Context, db *sql.DB, dialect dbx.Dialect, hasher cryptox.PasswordHasher, now time.Time) error {
	today := dates.Today(now)

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repos := NewRepositories(tx, dialect)

		for _, p := range demoPatients(today) {
			if _, err := repos.Patients.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, c := range demoCaregivers() {
			if _, err := repos.Caregivers.Create(ctx, c); err != nil {
				return err
			}
		}
		for _, t := range demoTreatments(today) {
			if _, err := repos.Treatments.Create(ctx, t); err != nil {
				return err
			}
		}
		for _, u := range DemoUsers {
			hash, err := hasher.Hash(u.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
			}
			if _, err := repos.Users.Create(ctx, &models.User{Email: u.Email, PasswordHash: hash, Status: u.Status}); err != nil {
				return err
			}
		}
		return nil
	})
}

func mustDate(s string) time.Time {
	t, err := dates.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustTime(s string) time.Time {
	t, err := dates.ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func demoPatients(today string) []*models.Patient {
	patient := func(first, last, dob, level, room, created string) *models.Patient {
		return &models.Patient{
			Person:      models.Person{FirstName: first, Surname: last},
			DateOfBirth: mustDate(dob),
			CareLevel:   level,
			RoomNumber:  room,
			DateCreated: created,
		}
	}
	return []*models.Patient{
		patient("Seppl", "Herberger", "1945-12-01", "4", "202", today),
		patient("Martina", "Gerdsen", "1954-08-12", "5", "010", today),
		patient("Gertrud", "Franzen", "1949-04-16", "3", "002", today),
		patient("Ahmet", "Yilmaz", "1941-02-22", "3", "013", today),
		patient("Hans", "Neumann", "1955-12-12", "2", "001", today),
		patient("Elisabeth", "Müller", "1958-03-07", "5", "110", today),
		patient("User", "Delete", "1999-08-22", "5", "97", "2001-01-01"),
		patient("User", "Not delete", "1999-08-22", "5", "97", "2020-01-01"),
	}
}

func demoCaregivers() []*models.Caregiver {
	caregiver := func(first, last, phone string, locked bool, created string) *models.Caregiver {
		return &models.Caregiver{
			Person:      models.Person{FirstName: first, Surname: last},
			PhoneNumber: phone,
			Locked:      locked,
			DateCreated: created,
		}
	}
	return []*models.Caregiver{
		caregiver("Hans", "Müller", "0176-12345678", false, "2023-06-03"),
		caregiver("Karin", "Schmidt", "0176-12345679", false, "2023-06-03"),
		caregiver("Peter", "Schneider", "0176-12345680", true, "2023-06-03"),
		caregiver("Klaus", "Fischer", "0176-12345681", false, "2023-06-03"),
		caregiver("Sabine", "Weber", "0176-12345682", false, "2023-06-03"),
		caregiver("Andrea", "Meyer", "0176-12345683", false, "2023-06-03"),
		caregiver("Thomas", "Meyer", "0176-12345683", false, "2023-06-03"),
		caregiver("User", "Delete", "0176-12345683", false, "2001-01-01"),
		caregiver("User", "Not Delete", "0176-12345683", false, "2020-01-01"),
	}
}

func demoTreatments(today string) []*models.Treatment {
	treatment := func(pid, cid int64, date, begin, end, desc, remarks string) *models.Treatment {
		return &models.Treatment{
			PatientID:   pid,
			CaregiverID: cid,
			Date:        mustDate(date),
			Begin:       mustTime(begin),
			End:         mustTime(end),
			Description: desc,
			Remarks:     remarks,
			DateCreated: today,
		}
	}
	return []*models.Treatment{
		treatment(1, 1, "2023-06-03", "11:00", "15:00", "Gespräch",
			"Der Patient hat enorme Angstgefühle und glaubt, er sei überfallen worden. Ihm seien alle Wertsachen gestohlen worden.\n"+
				"Patient beruhigt sich erst, als alle Wertsachen im Zimmer gefunden worden sind."),
		treatment(2, 1, "2023-06-05", "11:00", "12:30", "Gespräch",
			"Patient irrt auf der Suche nach gestohlenen Wertsachen durch die Etage und bezichtigt andere Bewohner des Diebstahls.\n"+
				"Patient wird in seinen Raum zurückbegleitet und erhält Beruhigungsmittel."),
		treatment(3, 2, "2023-06-04", "07:30", "08:00", "Waschen",
			"Patient mit Waschlappen gewaschen und frisch angezogen. Patient gewendet."),
		treatment(4, 1, "2023-06-06", "15:10", "16:00", "Spaziergang",
			"Spaziergang im Park, Patient döst  im Rollstuhl ein"),
		treatment(4, 1, "2023-06-08", "15:00", "16:00", "Spaziergang",
			"Parkspaziergang; Patient ist heute lebhafter und hat klare Momente; erzählt von seiner Tochter"),
		treatment(3, 2, "2023-06-07", "11:00", "11:30", "Waschen",
			"Waschen per Dusche auf einem Stuhl; Patientin gewendet;"),
		treatment(2, 5, "2023-06-08", "15:00", "15:30", "Physiotherapie",
			"Übungen zur Stabilisation und Mobilisierung der Rückenmuskulatur"),
		treatment(2, 4, "2023-08-24", "09:30", "10:15", "KG", "Lympfdrainage"),
		treatment(1, 6, "2023-08-31", "13:30", "13:45", "Toilettengang",
			"Hilfe beim Toilettengang; Patientin klagt über Schmerzen beim Stuhlgang. Gabe von Iberogast"),
		treatment(2, 6, "2023-09-01", "16:00", "17:00", "KG",
			"Massage der Extremitäten zur Verbesserung der Durchblutung"),
	}
}
