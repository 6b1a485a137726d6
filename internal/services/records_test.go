package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/database"
	"github.com/hitec/nhplus/internal/database/dbtest"
	"github.com/hitec/nhplus/internal/logging"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/retention"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 2, 10, 30, 0, 0, time.UTC)
}

type fixture struct {
	repos      *database.Repositories
	patients   *Records[models.Patient, *models.Patient]
	caregivers *Records[models.Caregiver, *models.Caregiver]
	treatments *Records[models.Treatment, *models.Treatment]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	_, repos := dbtest.Repositories(t)
	policy := retention.NewPolicy(retention.MinYears, fixedClock)
	log := logging.Discard()
	return &fixture{
		repos:      repos,
		patients:   NewRecords[models.Patient]("patient", repos.Patients, policy, log),
		caregivers: NewRecords[models.Caregiver]("caregiver", repos.Caregivers, policy, log),
		treatments: NewRecords[models.Treatment]("treatment", repos.Treatments, policy, log),
	}
}

func patient(created string) *models.Patient {
	return &models.Patient{
		Person:      models.Person{FirstName: "User", Surname: "Delete"},
		DateOfBirth: time.Date(1999, 8, 22, 0, 0, 0, 0, time.UTC),
		CareLevel:   "5",
		RoomNumber:  "97",
		DateCreated: created,
	}
}

func caregiver(created string) *models.Caregiver {
	return &models.Caregiver{
		Person:      models.Person{FirstName: "Hans", Surname: "Müller"},
		PhoneNumber: "0176-12345678",
		DateCreated: created,
	}
}

func treatment(pid, cid int64, created string) *models.Treatment {
	return &models.Treatment{
		PatientID:   pid,
		CaregiverID: cid,
		Date:        time.Date(2023, 6, 3, 0, 0, 0, 0, time.UTC),
		Begin:       time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
		End:         time.Date(0, 1, 1, 15, 0, 0, 0, time.UTC),
		Description: "Gespräch",
		DateCreated: created,
	}
}

func TestRecords_DeleteAfterRetentionPeriod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old, err := f.patients.Add(ctx, patient("2001-01-01"))
	require.NoError(t, err)

	require.NoError(t, f.patients.Delete(ctx, old.ID))

	all, err := f.patients.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecords_DeleteRefusedWithinRetentionPeriod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	young, err := f.patients.Add(ctx, patient("2020-01-01"))
	require.NoError(t, err)

	err = f.patients.Delete(ctx, young.ID)
	require.ErrorIs(t, err, common.ErrorRetentionPeriod)

	got, err := f.patients.Get(ctx, young.ID)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", got.DateCreated)
}

func TestRecords_DeleteExactlyTenYears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.caregivers.Add(ctx, caregiver("2014-06-02"))
	require.NoError(t, err)
	require.NoError(t, f.caregivers.Delete(ctx, c.ID))

	c2, err := f.caregivers.Add(ctx, caregiver("2014-06-03"))
	require.NoError(t, err)
	require.ErrorIs(t, f.caregivers.Delete(ctx, c2.ID), common.ErrorRetentionPeriod)
}

func TestRecords_DeleteLockedRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.patients.Add(ctx, patient("2001-01-01"))
	require.NoError(t, err)

	locked, err := f.patients.ToggleLock(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, locked.Locked)
	assert.False(t, f.patients.Deletable(locked))

	require.ErrorIs(t, f.patients.Delete(ctx, p.ID), common.ErrorLocked)

	unlocked, err := f.patients.ToggleLock(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, unlocked.Locked)
	assert.True(t, f.patients.Deletable(unlocked))
	require.NoError(t, f.patients.Delete(ctx, p.ID))
}

func TestRecords_DeleteMalformedStampRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.repos.Patients.Create(ctx, patient("01.01.2001"))
	require.NoError(t, err)

	assert.False(t, f.patients.Deletable(p))
	require.ErrorIs(t, f.patients.Delete(ctx, p.ID), common.ErrorRetentionPeriod)
}

func TestRecords_DeleteReferencedKeepsRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.patients.Add(ctx, patient("2001-01-01"))
	require.NoError(t, err)
	c, err := f.caregivers.Add(ctx, caregiver("2001-01-01"))
	require.NoError(t, err)
	_, err = f.treatments.Add(ctx, treatment(p.ID, c.ID, ""))
	require.NoError(t, err)

	require.ErrorIs(t, f.patients.Delete(ctx, p.ID), common.ErrorConstraint)
	require.ErrorIs(t, f.caregivers.Delete(ctx, c.ID), common.ErrorConstraint)

	all, err := f.patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, p.ID, all[0].ID)
}

func TestRecords_TreatmentRetentionApplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.patients.Add(ctx, patient("2001-01-01"))
	require.NoError(t, err)
	c, err := f.caregivers.Add(ctx, caregiver("2001-01-01"))
	require.NoError(t, err)

	fresh, err := f.treatments.Add(ctx, treatment(p.ID, c.ID, ""))
	require.NoError(t, err)
	require.ErrorIs(t, f.treatments.Delete(ctx, fresh.ID), common.ErrorRetentionPeriod)

	old, err := f.treatments.Add(ctx, treatment(p.ID, c.ID, "2001-01-01"))
	require.NoError(t, err)
	require.NoError(t, f.treatments.Delete(ctx, old.ID))
}

func TestRecords_AddTreatmentMissingPatient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.caregivers.Add(ctx, caregiver(""))
	require.NoError(t, err)

	_, err = f.treatments.Add(ctx, treatment(999, c.ID, ""))
	require.ErrorIs(t, err, common.ErrorConstraint)

	all, err := f.treatments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "no partial row")
}

func TestRecords_AddStampsToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.patients.Add(ctx, patient(""))
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "2024-06-02", p.DateCreated)

	got, err := f.patients.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRecords_AddInvalidStoresNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := caregiver("")
	c.PhoneNumber = "123"
	_, err := f.caregivers.Add(ctx, c)
	require.ErrorIs(t, err, common.ErrorValidation)

	all, err := f.caregivers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecords_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.patients.Add(ctx, patient(""))
	require.NoError(t, err)

	p.RoomNumber = "202"
	require.NoError(t, f.patients.Update(ctx, p))

	got, err := f.patients.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "202", got.RoomNumber)

	p.RoomNumber = " "
	require.ErrorIs(t, f.patients.Update(ctx, p), common.ErrorValidation)

	ghost := patient("2020-01-01")
	ghost.ID = 4242
	require.ErrorIs(t, f.patients.Update(ctx, ghost), common.ErrorNoRowsAffected)
}

func TestRecords_UpdateKeepsCreationDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.patients.Add(ctx, patient("2020-01-01"))
	require.NoError(t, err)

	backdated := *p
	backdated.DateCreated = "2001-01-01"
	backdated.RoomNumber = "12"
	require.NoError(t, f.patients.Update(ctx, &backdated))
	assert.Equal(t, "2020-01-01", backdated.DateCreated)

	got, err := f.patients.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "12", got.RoomNumber)
	assert.Equal(t, "2020-01-01", got.DateCreated)
	require.ErrorIs(t, f.patients.Delete(ctx, p.ID), common.ErrorRetentionPeriod)

	blank := *got
	blank.DateCreated = ""
	require.NoError(t, f.patients.Update(ctx, &blank))
	got, err = f.patients.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", got.DateCreated)

	old, err := f.caregivers.Add(ctx, caregiver("2001-01-01"))
	require.NoError(t, err)
	fresh := *old
	fresh.DateCreated = "2024-06-01"
	require.NoError(t, f.caregivers.Update(ctx, &fresh))
	require.NoError(t, f.caregivers.Delete(ctx, old.ID), "an old record stays deletable after an edit")
}

func TestRecords_MissingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.patients.Delete(ctx, 77), common.ErrorNotFound)
	_, err := f.patients.ToggleLock(ctx, 77)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
