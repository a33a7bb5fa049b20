package ganjoor

import (
	"maps"
	"slices"
	"strings"
)

// Couplet groups the verses that share a couplet index.
type Couplet struct {
	Index  int
	Verses []Verse
}

// String joins the verse texts with line breaks.
func (c Couplet) String() string {
	texts := make([]string, len(c.Verses))
	for i, v := range c.Verses {
		texts[i] = v.Text
	}
	return strings.Join(texts, "\n")
}

// CoupletOf returns the verses whose couplet index equals index, in their original
// order.
func CoupletOf(verses []Verse, index int) Couplet {
	c := Couplet{Index: index, Verses: []Verse{}}
	for _, v := range verses {
		if v.CoupletIndex == index {
			c.Verses = append(c.Verses, v)
		}
	}
	return c
}

// maxCoupletGap bounds how far couplet indices may outrun the verse count before
// GroupCouplets stops filling the gaps.
const maxCoupletGap = 1024

// GroupCouplets returns one couplet per index from 0 through the highest couplet
// index present. No verses yields no couplets. Verses with a negative index are
// skipped. When the highest index exceeds len(verses)+maxCoupletGap only the indices
// actually present are returned, in ascending order.
func GroupCouplets(verses []Verse) []Couplet {
	highest := -1
	for _, v := range verses {
		highest = max(highest, v.CoupletIndex)
	}
	if highest < 0 {
		return []Couplet{}
	}
	if highest >= len(verses)+maxCoupletGap {
		return sparseCouplets(verses)
	}

	couplets := make([]Couplet, highest+1)
	for i := range couplets {
		couplets[i] = Couplet{Index: i, Verses: []Verse{}}
	}
	for _, v := range verses {
		if v.CoupletIndex < 0 {
			continue
		}
		couplets[v.CoupletIndex].Verses = append(couplets[v.CoupletIndex].Verses, v)
	}
	return couplets
}

func sparseCouplets(verses []Verse) []Couplet {
	byIndex := make(map[int][]Verse)
	for _, v := range verses {
		if v.CoupletIndex >= 0 {
			byIndex[v.CoupletIndex] = append(byIndex[v.CoupletIndex], v)
		}
	}
	couplets := make([]Couplet, 0, len(byIndex))
	for _, index := range slices.Sorted(maps.Keys(byIndex)) {
		couplets = append(couplets, Couplet{Index: index, Verses: byIndex[index]})
	}
	return couplets
}

// Couplet returns the couplet at index.
func (p Poem) Couplet(index int) Couplet {
	return CoupletOf(p.Verses(), index)
}

// Couplets returns every couplet of the poem.
func (p Poem) Couplets() []Couplet {
	return GroupCouplets(p.Verses())
}

// String renders the poem as couplets separated by blank lines.
func (p Poem) String() string {
	couplets := p.Couplets()
	parts := make([]string, len(couplets))
	for i, c := range couplets {
		parts[i] = c.String()
	}
	return strings.Join(parts, "\n\n")
}
