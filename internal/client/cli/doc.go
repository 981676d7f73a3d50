// Package cli is the terminal front end of the jobkeeper client.
//
// App owns the session provider, the cache controller and the profile
// service for the lifetime of the process. The REPL reads one command per
// line; every read is served from the controller's mirrors and every change
// goes through the controller, so what is printed is always what the server
// confirmed.
//
// Collections may be abbreviated: a/app/apps, i/interview, t/task and
// c/contact. List accepts field=value filters (case-insensitive equality)
// and sort=field or sort=-field.
package cli
