// Package ui provides a terminal poem reader for the Ganjoor archive.
//
// # Architecture Overview
//
// The reader is a single Bubble Tea model. The poem body sits in a bubbles
// viewport between a one-line header (full title and id) and a one-line footer
// (fetch state, last error or short key help). Rendering goes through the render
// package with the current theme's styles.
//
// # Fetching
//
// All network calls run as tea.Cmd functions against a PoemSource, which the
// ganjoor client satisfies. Results come back as poemMsg or errMsg. Only one fetch
// runs at a time; keys that would start another are ignored while loading.
//
// On start the reader opens, in order of preference:
//
//  1. The poem id passed in Options
//  2. The last poem recorded in prefs
//  3. A random poem (optionally from one poet)
//
// Next and previous use the navigation summaries embedded in the current poem, so
// moving costs one request and nothing is prefetched.
//
// # Key Bindings
//
//   - n/p: next/previous poem
//   - r: random poem
//   - f: Hafez faal
//   - c: toggle comments under the poem
//   - T: cycle theme
//   - h/?: help overlay (any key closes it)
//   - q/ctrl+c: quit
//
// Other keys scroll the viewport.
//
// # Persistence
//
// Theme, comment visibility and each successfully loaded poem id are written to the prefs
// file immediately. Save failures are logged and otherwise ignored.
package ui
