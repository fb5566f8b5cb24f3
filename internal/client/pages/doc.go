// Package pages holds the role-guarded page shells of the client: login,
// admin, staff and student. A page is mounted when the router enters its
// route; mounting checks the session's role before any data is fetched.
//
// Pages talk to the user only through the UI and Navigator interfaces, so
// the terminal front end and tests can drive them the same way.
package pages
