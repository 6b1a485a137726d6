package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/models"
)

func table(w io.Writer, header string, rows func(tw io.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func renderPatients(w io.Writer, ps []*models.Patient) {
	table(w, "ID\tSURNAME\tFIRST NAME\tBORN\tCARE LEVEL\tROOM\tLOCKED\tCREATED", func(tw io.Writer) {
		for _, p := range ps {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Surname, p.FirstName,
				dates.FormatDate(p.DateOfBirth), p.CareLevel, p.RoomNumber, yesNo(p.Locked), p.DateCreated)
		}
	})
}

func renderCaregivers(w io.Writer, cs []*models.Caregiver) {
	table(w, "ID\tSURNAME\tFIRST NAME\tPHONE\tLOCKED\tCREATED", func(tw io.Writer) {
		for _, c := range cs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Surname, c.FirstName,
				c.PhoneNumber, yesNo(c.Locked), c.DateCreated)
		}
	})
}

func renderTreatments(w io.Writer, ts []*models.Treatment) {
	table(w, "ID\tPID\tCID\tDATE\tBEGIN\tEND\tDESCRIPTION\tLOCKED\tCREATED", func(tw io.Writer) {
		for _, t := range ts {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.PatientID, t.CaregiverID,
				dates.FormatDate(t.Date), dates.FormatTime(t.Begin), dates.FormatTime(t.End),
				t.Description, yesNo(t.Locked), t.DateCreated)
		}
	})
}

func renderUsers(w io.Writer, us []*models.User) {
	table(w, "ID\tEMAIL\tSTATUS", func(tw io.Writer) {
		for _, u := range us {
			fmt.Fprintf(tw, "%d\t%s\t%d\n", u.ID, u.Email, u.Status)
		}
	})
}
