// Package watch turns filesystem drop directories into upload notifications.
//
// A Watcher monitors a single directory and emits one ingest.Notification per
// batch file that lands in it, so a local drop folder behaves like an object
// store bucket feeding the driver.
package watch
