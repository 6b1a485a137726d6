package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hitec/nhplus/internal/app"
	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/services"
)

// kind is the set of commands available for one record type. Nil funcs are
// unsupported for that type.
type kind struct {
	name string
	list func(ctx context.Context, args []string) error
	add  func(ctx context.Context) error
	show func(ctx context.Context, id int64) error
	edit func(ctx context.Context, id int64) error
	del  func(ctx context.Context, id int64) error
	lock func(ctx context.Context, id int64) (bool, error)
}

func recordKind[T any, P models.Record[T]](c *CLI, name string, svc *services.Records[T, P],
	render func(io.Writer, []*T), read func() (*T, error), fill func(*T) error) *kind {
	get := func(ctx context.Context, id int64) (*T, error) {
		return app.Run(ctx, c.app, func(ctx context.Context) (*T, error) {
			return svc.Get(ctx, id)
		})
	}
	return &kind{
		name: name,
		list: func(ctx context.Context, _ []string) error {
			recs, err := app.Run(ctx, c.app, svc.List)
			if err != nil {
				return err
			}
			render(c.out, recs)
			return nil
		},
		add: func(ctx context.Context) error {
			rec, err := read()
			if err != nil {
				return err
			}
			created, err := app.Run(ctx, c.app, func(ctx context.Context) (*T, error) {
				return svc.Add(ctx, rec)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Added %s %d\n", name, P(created).RecordID())
			return nil
		},
		show: func(ctx context.Context, id int64) error {
			rec, err := get(ctx, id)
			if err != nil {
				return err
			}
			render(c.out, []*T{rec})
			fmt.Fprintf(c.out, "Deletable: %s\n", yesNo(svc.Deletable(rec)))
			return nil
		},
		edit: func(ctx context.Context, id int64) error {
			rec, err := get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Press enter to keep a value")
			if err := fill(rec); err != nil {
				return err
			}
			if err := app.Exec(ctx, c.app, func(ctx context.Context) error {
				return svc.Update(ctx, rec)
			}); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Updated %s %d\n", name, id)
			return nil
		},
		del: func(ctx context.Context, id int64) error {
			return app.Exec(ctx, c.app, func(ctx context.Context) error {
				return svc.Delete(ctx, id)
			})
		},
		lock: func(ctx context.Context, id int64) (bool, error) {
			rec, err := app.Run(ctx, c.app, func(ctx context.Context) (*T, error) {
				return svc.ToggleLock(ctx, id)
			})
			if err != nil {
				return false, err
			}
			return P(rec).IsLocked(), nil
		},
	}
}

func (c *CLI) buildKinds() map[string]*kind {
	patients := recordKind(c, "patient", c.app.Patients, renderPatients, c.readPatient, c.editPatient)
	caregivers := recordKind(c, "caregiver", c.app.Caregivers, renderCaregivers, c.readCaregiver, c.editCaregiver)
	treatments := recordKind(c, "treatment", c.app.Treatments, renderTreatments, c.readTreatment, c.editTreatment)
	treatments.list = c.listTreatments

	users := &kind{
		name: "user",
		list: func(ctx context.Context, _ []string) error {
			us, err := app.Run(ctx, c.app, c.app.Repos.Users.ReadAll)
			if err != nil {
				return err
			}
			renderUsers(c.out, us)
			return nil
		},
	}

	return map[string]*kind{
		"patient": patients, "patients": patients, "p": patients,
		"caregiver": caregivers, "caregivers": caregivers, "c": caregivers,
		"treatment": treatments, "treatments": treatments, "t": treatments,
		"user": users, "users": users, "u": users,
	}
}

func (c *CLI) lookupKind(args []string, usage string) (*kind, error) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage:", usage)
		return nil, fmt.Errorf("missing record kind: %w", common.ErrorValidation)
	}
	k, ok := c.kinds[args[0]]
	if !ok {
		return nil, c.report(fmt.Errorf("unknown record kind %q: %w", args[0], common.ErrorValidation))
	}
	return k, nil
}

func (c *CLI) kindAndID(args []string, usage string) (*kind, int64, error) {
	k, err := c.lookupKind(args, usage)
	if err != nil {
		return nil, 0, err
	}
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Usage:", usage)
		return nil, 0, fmt.Errorf("missing id: %w", common.ErrorValidation)
	}
	id, err := parseID(args[1])
	if err != nil {
		return nil, 0, c.report(fmt.Errorf("%w: %w", common.ErrorValidation, err))
	}
	return k, id, nil
}

func (c *CLI) List(ctx context.Context, args []string) error {
	k, err := c.lookupKind(args, "list <patients|caregivers|treatments|users> [pid | -c cid]")
	if err != nil {
		return err
	}
	return c.report(k.list(ctx, args[1:]))
}

// listTreatments lists all treatments, those of one patient ("<pid>") or
// those of one caregiver ("-c <cid>").
func (c *CLI) listTreatments(ctx context.Context, args []string) error {
	var (
		ts  []*models.Treatment
		err error
	)
	switch {
	case len(args) == 0:
		ts, err = app.Run(ctx, c.app, c.app.Treatments.List)
	case args[0] == "-c" && len(args) > 1:
		cid, perr := parseID(args[1])
		if perr != nil {
			return fmt.Errorf("%w: %w", common.ErrorValidation, perr)
		}
		ts, err = app.Run(ctx, c.app, func(ctx context.Context) ([]*models.Treatment, error) {
			return c.app.Repos.Treatments.ReadByCaregiver(ctx, cid)
		})
	default:
		pid, perr := parseID(args[0])
		if perr != nil {
			return fmt.Errorf("%w: %w", common.ErrorValidation, perr)
		}
		ts, err = app.Run(ctx, c.app, func(ctx context.Context) ([]*models.Treatment, error) {
			return c.app.Repos.Treatments.ReadByPatient(ctx, pid)
		})
	}
	if err != nil {
		return err
	}
	renderTreatments(c.out, ts)
	return nil
}

func (c *CLI) Add(ctx context.Context, args []string) error {
	k, err := c.lookupKind(args, "add <patient|caregiver|treatment>")
	if err != nil {
		return err
	}
	if k.add == nil {
		return c.report(fmt.Errorf("cannot add %s records here, use register: %w", k.name, common.ErrorValidation))
	}
	if !c.isLoggedIn() {
		return c.report(common.ErrorNotLoggedIn)
	}
	return c.report(k.add(ctx))
}

// Show prints one record and whether it may be deleted now.
func (c *CLI) Show(ctx context.Context, args []string) error {
	k, id, err := c.kindAndID(args, "show <patient|caregiver|treatment> <id>")
	if err != nil {
		return err
	}
	if k.show == nil {
		return c.report(fmt.Errorf("cannot show single %s records: %w", k.name, common.ErrorValidation))
	}
	return c.report(k.show(ctx, id))
}

// Edit prompts for every editable field of a record and saves the result.
func (c *CLI) Edit(ctx context.Context, args []string) error {
	k, id, err := c.kindAndID(args, "edit <patient|caregiver|treatment> <id>")
	if err != nil {
		return err
	}
	if k.edit == nil {
		return c.report(fmt.Errorf("cannot edit %s records: %w", k.name, common.ErrorValidation))
	}
	return c.report(k.edit(ctx, id))
}

func (c *CLI) Delete(ctx context.Context, args []string) error {
	k, id, err := c.kindAndID(args, "delete <patient|caregiver|treatment> <id>")
	if err != nil {
		return err
	}
	if k.del == nil {
		return c.report(fmt.Errorf("cannot delete %s records: %w", k.name, common.ErrorValidation))
	}
	if err := k.del(ctx, id); err != nil {
		if errors.Is(err, common.ErrorConstraint) {
			fmt.Fprintln(c.out, "Refused: delete all related treatments before deleting this entry")
			return err
		}
		return c.report(err)
	}
	fmt.Fprintf(c.out, "Deleted %s %d\n", k.name, id)
	return nil
}

func (c *CLI) Lock(ctx context.Context, args []string) error {
	k, id, err := c.kindAndID(args, "lock <patient|caregiver|treatment> <id>")
	if err != nil {
		return err
	}
	if k.lock == nil {
		return c.report(fmt.Errorf("cannot lock %s records: %w", k.name, common.ErrorValidation))
	}
	locked, err := k.lock(ctx, id)
	if err != nil {
		return c.report(err)
	}
	state := "unlocked"
	if locked {
		state = "locked"
	}
	fmt.Fprintf(c.out, "%s %d is now %s\n", k.name, id, state)
	return nil
}
