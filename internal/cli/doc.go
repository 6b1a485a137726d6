// Package cli implements the interactive text front end of NHPlus.
//
// The REPL offers login/logout and, once logged in, listing, adding,
// locking and deleting patients, caregivers and treatments. Every storage
// call goes through app.Run, so it executes on the application's task queue
// while the input loop only waits for the result.
//
// Outcomes are reported by class: validation problems, refusals (locked
// record, retention period not reached, wrong credentials), records still
// referenced by treatments, and storage failures.
package cli
