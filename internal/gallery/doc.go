// Package gallery holds the demo pages served by the dev server and
// written by the snapshot command.
//
// Every demo is built entirely through the public fluentdom API against
// an in-memory document, then serialized into a shared page scaffold.
// Demos register themselves in the demos table; the server and snapshot
// tool discover them through Demos and Lookup.
package gallery
