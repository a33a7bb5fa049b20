// Package render turns ganjoor values into terminal text.
//
// Every renderer takes a Styles value built from a Theme. Plain() yields
// unstyled output for pipes and tests. Poems render as a title, a breadcrumb
// built from the category ancestors, the metre rhythm, and the couplets separated
// by blank lines. Comment bodies are HTML on the wire; HTMLToText reduces them to
// paragraphs with goquery.
package render
