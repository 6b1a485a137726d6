// Package models defines the records kept by the NHPlus back office:
// patients, caregivers, the treatments linking them, and user accounts.
//
// Patient, Caregiver and Treatment carry a Locked flag (frozen for compliance)
// and a DateCreated stamp in "YYYY-MM-DD" form that is set once at creation and
// never advanced. Together they satisfy Record, which is what the retention-gated
// record service operates on.
//
// Every model exposes Validate, the input check a front end runs before it
// enables an add or save action.
package models
