package ganjoor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verses(indices ...int) []Verse {
	out := make([]Verse, len(indices))
	for i, idx := range indices {
		out[i] = Verse{ID: i + 1, VOrder: i + 1, CoupletIndex: idx, Text: string(rune('a' + i))}
	}
	return out
}

func TestGroupCouplets_CoversEveryIndexInOrder(t *testing.T) {
	input := verses(0, 0, 1, 1, 2, 2, 2)

	couplets := GroupCouplets(input)
	require.Len(t, couplets, 3)

	seen := map[int]int{}
	for i, c := range couplets {
		assert.Equal(t, i, c.Index)
		prev := 0
		for _, v := range c.Verses {
			assert.Equal(t, i, v.CoupletIndex)
			assert.Greater(t, v.VOrder, prev, "verses keep their original order")
			prev = v.VOrder
			seen[v.ID]++
		}
	}
	for _, v := range input {
		assert.Equal(t, 1, seen[v.ID], "verse %d must appear in exactly one couplet", v.ID)
	}
	assert.Len(t, couplets[2].Verses, 3)
}

func TestGroupCouplets_EmptyInput(t *testing.T) {
	couplets := GroupCouplets(nil)
	assert.NotNil(t, couplets)
	assert.Empty(t, couplets)

	var p Poem
	assert.Empty(t, p.Couplets())
	assert.Equal(t, "", p.String())
}

func TestGroupCouplets_GapYieldsEmptyCouplet(t *testing.T) {
	couplets := GroupCouplets(verses(0, 0, 2, 2))
	require.Len(t, couplets, 3)
	assert.Empty(t, couplets[1].Verses)
	assert.NotNil(t, couplets[1].Verses)
}

func TestGroupCouplets_HugeIndexFallsBackToPresentIndices(t *testing.T) {
	couplets := GroupCouplets(verses(0, 0, 1<<40, -1))
	require.Len(t, couplets, 2)
	assert.Equal(t, 0, couplets[0].Index)
	assert.Len(t, couplets[0].Verses, 2)
	assert.Equal(t, 1<<40, couplets[1].Index)
	assert.Equal(t, "c", couplets[1].String())
}

func TestGroupCouplets_GapsWithinBoundStayDense(t *testing.T) {
	couplets := GroupCouplets(verses(0, maxCoupletGap))
	require.Len(t, couplets, maxCoupletGap+1)
	assert.Empty(t, couplets[1].Verses)
	assert.Equal(t, "b", couplets[maxCoupletGap].String())
}

func TestCoupletOf(t *testing.T) {
	input := verses(0, 1, 0, 1)

	c := CoupletOf(input, 1)
	require.Len(t, c.Verses, 2)
	assert.Equal(t, []int{2, 4}, []int{c.Verses[0].ID, c.Verses[1].ID})

	assert.Empty(t, CoupletOf(input, 7).Verses)
}

func TestCouplet_String(t *testing.T) {
	c := Couplet{Verses: []Verse{{Text: "first"}, {Text: "second"}}}
	assert.Equal(t, "first\nsecond", c.String())
	assert.Equal(t, "", Couplet{}.String())
}

func TestPoem_StringJoinsCoupletsWithBlankLine(t *testing.T) {
	data, err := os.ReadFile("testdata/poem.json")
	require.NoError(t, err)
	poem, err := NewPoem(data)
	require.NoError(t, err)

	want := "صلاح کار کجا و من خراب کجا\n" +
		"ببین تفاوت ره کز کجاست تا به کجا\n" +
		"\n" +
		"دلم ز صومعه بگرفت و خرقهٔ سالوس\n" +
		"کجاست دیر مغان و شراب ناب کجا"
	assert.Equal(t, want, poem.String())

	second := poem.Couplet(1)
	require.Len(t, second.Verses, 2)
	assert.Equal(t, 3, second.Verses[0].ID)
}
