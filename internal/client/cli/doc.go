// Package cli provides the interactive gophfeed terminal client.
//
// It wires configuration, the local credential store, the API client and the
// session core, then serves a REPL whose commands and prompt follow the
// screen group chosen by the navigator:
//
//   - signed out: login, register
//   - signed in: home/feed, refresh, profile, back, logout
//
// App.Run resolves the stored session before the first prompt, so a
// returning user lands on the feed without logging in again.
package cli
