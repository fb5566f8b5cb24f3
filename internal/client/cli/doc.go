// Package cli provides the interactive Campus Poll Hub terminal client.
//
// It wires the session store, the poll service and the role-guarded pages
// into a REPL. Typical flow: restore the saved session (or prompt for
// credentials), land on the dashboard for the user's role, and run page
// commands until the user exits.
//
// Key features:
//   - Login / Register / Logout
//   - Student: list polls, vote, badges, profile
//   - Staff: list polls, author polls, detailed results
//   - Admin: users, polls, stats, deletion, detailed results
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the pages package for details.
package cli
