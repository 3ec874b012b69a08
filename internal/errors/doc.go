// Package errors provides structured, actionable error messages for the
// fluentdom tooling.
//
// The errors package implements an error system that:
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: Project configuration errors (missing file, bad values)
//   - serve: Dev server errors (bind failures, missing static dir)
//   - snapshot: Snapshot rendering and publishing errors
//   - cli: Command-line usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E101") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A fix suggestion
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E201").Wrap(listenErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Failed to listen on dev server address
//	//
//	//   The address is already in use or you lack permission to bind it.
//	//
//	//   Caused by: listen tcp 127.0.0.1:8420: bind: address already in use
//	//
//	//   Hint: Stop the other process or change dev.port in fluentdom.json.
//	//
//	//   Learn more: https://fluentdom.dev/docs/errors/E201
package errors
