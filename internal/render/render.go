package render

import (
	"fmt"
	"strings"

	"github.com/five82/ganjoor/ganjoor"
)

const breadcrumbSep = " » "

// Poem renders a poem with its title, breadcrumb and couplets.
func Poem(p *ganjoor.Poem, s Styles) string {
	if p == nil {
		return ""
	}
	var b strings.Builder

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = p.FullTitle
	}
	b.WriteString(s.Title.Render(title))
	b.WriteByte('\n')
	if crumb := Breadcrumb(p); crumb != "" {
		b.WriteString(s.Breadcrumb.Render(crumb))
		b.WriteByte('\n')
	}
	if m := p.Metre(); m != nil && strings.TrimSpace(m.Rhythm) != "" {
		b.WriteString(s.MutedText.Render(m.Rhythm))
		b.WriteByte('\n')
	}

	for i, c := range p.Couplets() {
		b.WriteByte('\n')
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range c.Verses {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(s.Verse.Render(v.Text))
		}
	}
	return b.String()
}

// Breadcrumb renders the category path of a poem, e.g. "حافظ » غزلیات".
func Breadcrumb(p *ganjoor.Poem) string {
	cat := p.Category()
	if cat == nil {
		if poet := p.Poet(); poet != nil {
			return poet.Name
		}
		return ""
	}
	var parts []string
	for _, a := range cat.Ancestors() {
		parts = append(parts, a.Title)
	}
	if len(parts) == 0 {
		if poet := cat.Poet(); poet != nil {
			parts = append(parts, poet.Name)
		}
	}
	parts = append(parts, cat.Title)
	return strings.Join(parts, breadcrumbSep)
}

// PoetLine renders one row of a poet listing.
func PoetLine(p ganjoor.Poet, s Styles) string {
	line := fmt.Sprintf("%5d  %s", p.ID, s.AccentText.Render(p.Name))
	if p.FullURL != "" {
		line += "  " + s.MutedText.Render(p.FullURL)
	}
	return line
}

// CategoryTree renders a category, its children and any poem listings.
func CategoryTree(c *ganjoor.Category, s Styles) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.Title.Render(c.Title))
	if c.FullURL != "" {
		b.WriteString("  " + s.MutedText.Render(c.FullURL))
	}
	if poet := c.Poet(); poet != nil {
		b.WriteString("\n" + s.Breadcrumb.Render(poet.Name))
	}
	for _, child := range c.Children() {
		fmt.Fprintf(&b, "\n  %s %5d  %s", s.Number.Render("▸"), child.ID, s.Text.Render(child.Title))
	}
	for _, poem := range c.Poems() {
		fmt.Fprintf(&b, "\n  %s %5d  %s", s.Number.Render("•"), poem.ID, s.Text.Render(poem.Title))
		if excerpt := strings.TrimSpace(poem.Excerpt); excerpt != "" {
			b.WriteString("  " + s.MutedText.Render(excerpt))
		}
	}
	return b.String()
}

// PoemList renders search or similarity results, one poem per line.
func PoemList(poems []ganjoor.Poem, s Styles) string {
	lines := make([]string, 0, len(poems))
	for _, p := range poems {
		title := p.FullTitle
		if title == "" {
			title = p.Title
		}
		line := fmt.Sprintf("%6d  %s", p.ID, s.Text.Render(title))
		if verses := p.Verses(); len(verses) > 0 {
			line += "\n        " + s.MutedText.Render(verses[0].Text)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// CommentTree renders comments with replies indented under their parent.
func CommentTree(comments []ganjoor.Comment, s Styles) string {
	var b strings.Builder
	writeComments(&b, comments, 0, s)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeComments(b *strings.Builder, comments []ganjoor.Comment, depth int, s Styles) {
	indent := strings.Repeat("    ", depth)
	for _, c := range comments {
		header := s.AccentText.Render(c.AuthorName)
		if c.CommentDate != "" {
			header += " " + s.MutedText.Render(c.CommentDate)
		}
		b.WriteString(indent + header + "\n")
		if summary := strings.TrimSpace(c.CoupletSummary); summary != "" {
			b.WriteString(indent + s.Number.Render("« "+summary+" »") + "\n")
		}
		for _, line := range strings.Split(HTMLToText(c.HTMLComment), "\n") {
			b.WriteString(indent + s.Text.Render(line) + "\n")
		}
		writeComments(b, c.Replies(), depth+1, s)
	}
}

// RecitationList renders recitations with their artist and audio URL.
func RecitationList(recs []ganjoor.Recitation, s Styles) string {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, fmt.Sprintf("%6d  %s  %s\n        %s",
			r.ID, s.Text.Render(r.AudioTitle), s.AccentText.Render(r.AudioArtist), s.MutedText.Render(r.Mp3URL)))
	}
	return strings.Join(lines, "\n")
}

// ImageList renders poem images with their full-size URL.
func ImageList(images []ganjoor.PoemImage, s Styles) string {
	lines := make([]string, 0, len(images))
	for _, img := range images {
		line := fmt.Sprintf("%3d  %s", img.ImageOrder, s.Text.Render(img.NormalImageURL()))
		if img.AltText != "" {
			line += "  " + s.MutedText.Render(img.AltText)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// SongList renders songs that set the poem to music.
func SongList(songs []ganjoor.Song, s Styles) string {
	lines := make([]string, 0, len(songs))
	for _, song := range songs {
		line := fmt.Sprintf("%6d  %s  %s", song.ID, s.Text.Render(song.TrackName), s.AccentText.Render(song.ArtistName))
		if song.AlbumName != "" {
			line += "  " + s.MutedText.Render(song.AlbumName)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
