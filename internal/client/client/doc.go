// Package client contains the client-side building blocks that talk to the
// outside world: the remote API and the local database.
//
// # Overview
//
//  1. Client, the transport-agnostic API contract used by the services:
//     Login, Signup and Posts.
//  2. HTTPClient, the JSON-over-HTTP implementation. Every request carries an
//     X-Request-ID; Posts carries the session token as a bearer credential.
//     Responses are decoded into explicit schemas and validated here, once, so
//     callers never inspect raw payloads.
//  3. InitDatabase/RunMigrations, which open the local SQLite database and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Failures are reported with the taxonomy in package common:
// *common.TransportError when the API cannot be reached, *common.ServerError
// for non-2xx answers, common.ErrMalformedResponse for 2xx answers missing a
// required field and common.ErrUnauthorized when a bearer request is rejected.
package client
