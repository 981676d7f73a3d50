// Package client is the jobkeeper transport used by the terminal client.
//
// # Overview
//
// The Client interface is the contract the rest of the client builds on:
// authentication (SignUp/SignIn/Refresh/SignOut/Me), generic collection
// access (List/Insert/Update/Delete), the profile record and presigned file
// uploads. GRPCClient implements it over the jobkeeper.v1.JobKeeper service.
//
// # Tokens
//
// GRPCClient attaches the access token to every call through a unary
// interceptor. When the server answers Unauthenticated with "token expired"
// the interceptor rotates the token pair once using the refresh token and
// retries the call. Concurrent callers share a single refresh. Listeners
// registered with OnTokens see every new pair so it can be persisted.
//
// # Errors
//
// gRPC status codes are mapped to the sentinels in internal/common
// (ErrAuth, ErrNotFound, ErrWrite, ErrNetwork); callers match them with
// errors.Is.
//
// # Local state
//
// InitDatabase opens the local SQLite file and applies the embedded goose
// migrations. Only session metadata is stored there.
package client
