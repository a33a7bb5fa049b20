package ui

import (
	"fmt"

	"github.com/five82/ganjoor/internal/render"
)

// renderHeader shows the poem's full title, or the app name before the first load.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	title := "ganjoor"
	if m.poem != nil {
		title = m.poem.FullTitle
		if title == "" {
			title = render.Breadcrumb(m.poem)
		}
		title = fmt.Sprintf("%s  #%d", title, m.poem.ID)
	}
	return styles.Header.Width(m.width).Render(truncate(title, m.width-2))
}

// renderFooter shows fetch state, the last error, or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	switch {
	case m.loading:
		return styles.Footer.Render("Loading...")
	case m.err != nil:
		return styles.Footer.Render(styles.DangerText.Render(truncate(m.err.Error(), m.width-2)))
	default:
		return styles.Footer.Render(m.help.View(m.keys))
	}
}
