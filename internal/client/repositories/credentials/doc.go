// Package credentials persists the session token and the user profile
// snapshot on the local device.
//
// The SQLite implementation keeps one row per key in the "credentials" table
// created by the client migrations:
//
//	CREATE TABLE credentials (key TEXT PRIMARY KEY, value BLOB NOT NULL);
//
// Rows survive process restarts; the session resolver reads the "token" row
// once at startup to decide which screen group to show.
package credentials
