// Package models holds the client-side data model of the EduFunds backend:
// users and sessions, funding opportunities, applications, AI-generated
// application drafts, and semantic search results.
//
// All types mirror the wire shapes of the REST API; anything derived
// (deadline urgency, id resolution) lives here as well so callers never
// reimplement it.
package models
