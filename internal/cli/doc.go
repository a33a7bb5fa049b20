// Package cli implements the ganjoor command line on top of cobra.
//
// Every command shares one app.Session opened in the root's PersistentPreRunE, so
// configuration, logging and the response cache are set up the same way for all of
// them. Entity arguments accept either a numeric id or a site path:
//
//	ganjoor poem 2130
//	ganjoor poem /hafez/ghazal/sh1
//	ganjoor cat 24 --poems
//	ganjoor search "دل" --poet 2
//
// Output is plain text unless stdout is a terminal, in which case the reader's
// saved theme colors it.
package cli
