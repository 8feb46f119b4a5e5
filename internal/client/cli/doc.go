// Package cli provides the interactive gateway command-line client.
//
// It wires configuration, the gRPC client and a read–eval–print loop. The
// session (access and refresh token) lives only as long as the process.
//
// Commands:
//   - register, login, logout
//   - me: show the logged-in identity
//   - refresh: obtain a new access token
//   - ping: check that the gateway answers
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
