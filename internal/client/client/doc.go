// Package client talks to the DevPair REST API.
//
// # Overview
//
//  1. HTTPClient issues JSON requests against a base URL and attaches the
//     current access token as "Authorization: Bearer <token>". Each request
//     carries a fresh X-Request-ID.
//  2. Client lists the whole endpoint surface HTTPClient implements.
//  3. InitDatabase / RunMigrations bootstrap the local sqlite store that
//     keeps the credential pair between runs.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are *APIError,
// carrying the server's message and unwrapping to ErrUnauthorized,
// ErrForbidden, ErrNotFound or ErrUnavailable by status. Nothing is
// retried.
package client
