package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockElements start a new text block. Everything else is inline.
var blockElements = map[string]bool{
	"p": true, "div": true, "blockquote": true, "pre": true,
	"ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

const blockSelector = "p,div,blockquote,pre,ul,ol,li,table,tr,h1,h2,h3,h4,h5,h6"

// HTMLToText extracts readable text from the HTML fragments the archive uses for
// comments and descriptions. Block elements and the inline runs between them become
// blocks separated by a blank line, in document order.
func HTMLToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	doc.Find("br").ReplaceWithHtml("\n")

	var blocks []string
	collectBlocks(doc.Find("body").Contents(), &blocks)
	return strings.Join(blocks, "\n\n")
}

// collectBlocks appends the text of nodes to blocks. Inline siblings are merged;
// block elements holding further blocks are descended into.
func collectBlocks(nodes *goquery.Selection, blocks *[]string) {
	var inline strings.Builder
	add := func(text string) {
		if text = cleanLines(text); text != "" {
			*blocks = append(*blocks, text)
		}
	}

	nodes.Each(func(_ int, s *goquery.Selection) {
		if !blockElements[goquery.NodeName(s)] {
			inline.WriteString(s.Text())
			return
		}
		add(inline.String())
		inline.Reset()
		if s.ChildrenFiltered(blockSelector).Length() > 0 {
			collectBlocks(s.Contents(), blocks)
			return
		}
		add(s.Text())
	})
	add(inline.String())
}

func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
