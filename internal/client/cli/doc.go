// Package cli provides the interactive EduFunds command-line client.
//
// It wires configuration, local storage, the API client, and the page
// controllers into an interactive REPL. Typical flow: restore the
// persisted session, show the dashboard, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Browse and filter funding opportunities, with an offline cache
//   - Semantic search over funding documents
//   - Manage applications and AI-generated drafts, including export
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits.
package cli
