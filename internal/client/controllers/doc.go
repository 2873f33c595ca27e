// Package controllers owns the per-view interaction logic that used to sit
// between user input and the backend: funding list filtering, debounced
// semantic search, the application/draft lifecycle, and dashboard
// aggregates. Controllers call endpoint modules through narrow interfaces
// so tests can substitute fakes; they never build raw requests.
package controllers
