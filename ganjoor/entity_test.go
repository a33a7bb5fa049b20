package ganjoor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestNewPoem_ScalarsPassThrough(t *testing.T) {
	poem, err := NewPoem(loadFixture(t, "poem.json"))
	require.NoError(t, err)

	assert.Equal(t, 2130, poem.ID)
	assert.Equal(t, "sh2", poem.URLSlug)
	assert.Equal(t, "/hafez/ghazal/sh2", poem.FullURL)
	assert.Equal(t, "ا", poem.RhymeLetters)
	assert.Equal(t, "ghazvini", poem.SourceURLSlug)

	metre := poem.Metre()
	require.NotNil(t, metre)
	assert.Equal(t, 11, metre.ID)
	assert.Equal(t, 2, metre.VerseCount)
	assert.Equal(t, "", metre.Description)
}

func TestNewPoem_CollectionsKeepCountAndOrder(t *testing.T) {
	poem, err := NewPoem(loadFixture(t, "poem.json"))
	require.NoError(t, err)

	vs := poem.Verses()
	require.Len(t, vs, 4)
	for i, v := range vs {
		assert.Equal(t, i+1, v.ID)
	}

	recs := poem.Recitations()
	require.Len(t, recs, 2)
	assert.Equal(t, []int{501, 502}, []int{recs[0].ID, recs[1].ID})
	assert.Equal(t, "20d8a8b8f1e2", recs[0].Mp3FileCheckSum)
	assert.Equal(t, int64(1830912), recs[0].Mp3SizeInBytes)
	assert.Equal(t, "6f4f3f0e-0c3b-4b53-9c4d-9b2b1a7c1f10", recs[0].LegacyAudioGUID)

	songs := poem.Songs()
	require.Len(t, songs, 2)
	assert.Equal(t, []int{9, 10}, []int{songs[0].ID, songs[1].ID})
	assert.True(t, songs[0].Approved)
	assert.Equal(t, "ganjoor", songs[0].SuggestedByNickname)

	comments := poem.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, []int{70, 72}, []int{comments[0].ID, comments[1].ID})

	images := poem.Images()
	require.Len(t, images, 1)
	assert.Equal(t, "https://example/img/normal/12.jpg", images[0].NormalImageURL())
}

func TestNewPoem_CommentTree(t *testing.T) {
	poem, err := NewPoem(loadFixture(t, "poem.json"))
	require.NoError(t, err)

	comments := poem.Comments()
	root := comments[0]
	assert.Nil(t, root.InReplyToID)
	assert.Nil(t, root.UserID)

	replies := root.Replies()
	require.Len(t, replies, 1)
	reply := replies[0]
	require.NotNil(t, reply.InReplyToID)
	assert.Equal(t, root.ID, *reply.InReplyToID)
	require.NotNil(t, reply.UserID)
	assert.Equal(t, "a3a1", *reply.UserID)
	assert.True(t, reply.MyComment)
	assert.Empty(t, reply.Replies())

	assert.NotNil(t, comments[1].Replies(), "null replies hydrate to an empty slice")
	assert.Empty(t, comments[1].Replies())
}

func TestNewPoem_NavigationIsSummaryOnly(t *testing.T) {
	poem, err := NewPoem(loadFixture(t, "poem.json"))
	require.NoError(t, err)

	next := poem.Next()
	require.NotNil(t, next)
	assert.Equal(t, 2131, next.ID)
	assert.Equal(t, "sh3", next.URLSlug)

	prev := poem.Previous()
	require.NotNil(t, prev)
	assert.Equal(t, 2129, prev.ID)
}

func TestNewPoem_CategoryAndPoetLinkEachOther(t *testing.T) {
	poem, err := NewPoem(loadFixture(t, "poem.json"))
	require.NoError(t, err)

	cat := poem.Category()
	require.NotNil(t, cat)
	assert.Equal(t, 24, cat.ID)
	assert.Empty(t, cat.Children())
	assert.Empty(t, cat.Poems())
	assert.Nil(t, cat.Next())
	ancestors := cat.Ancestors()
	require.Len(t, ancestors, 1)
	assert.Equal(t, "/hafez", ancestors[0].FullURL)

	poet := poem.Poet()
	require.NotNil(t, poet)
	assert.Equal(t, 2, poet.ID)
	assert.Equal(t, 24, poet.RootCatID)

	back := cat.Poet()
	require.NotNil(t, back)
	assert.Equal(t, poet.ID, back.ID)
	require.NotNil(t, poet.Category())
	assert.Equal(t, cat.ID, poet.Category().ID)
}

func TestNewPoem_AccessorsReturnFreshValues(t *testing.T) {
	poem, err := NewPoem(loadFixture(t, "poem.json"))
	require.NoError(t, err)

	first := poem.Verses()
	first[0].Text = "mutated"
	assert.NotEqual(t, "mutated", poem.Verses()[0].Text)

	m1, m2 := poem.Metre(), poem.Metre()
	assert.NotSame(t, m1, m2)
	assert.Equal(t, *m1, *m2)
}

func TestNewPoem_MissingNestedFields(t *testing.T) {
	poem, err := NewPoem([]byte(`{"id":1,"title":"t","verses":null}`))
	require.NoError(t, err)

	assert.NotNil(t, poem.Verses())
	assert.Empty(t, poem.Verses())
	assert.Empty(t, poem.Recitations())
	assert.Empty(t, poem.Images())
	assert.Empty(t, poem.Songs())
	assert.Empty(t, poem.Comments())
	assert.Nil(t, poem.Metre())
	assert.Nil(t, poem.Category())
	assert.Nil(t, poem.Poet())
	assert.Nil(t, poem.Next())
	assert.Nil(t, poem.Previous())
}

func TestNewPoem_MalformedNestedPayloadFailsAtConstruction(t *testing.T) {
	_, err := NewPoem([]byte(`{"id":1,"verses":[{"id":"not-a-number"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verses: item 0")

	_, err = NewPoem([]byte(`{"id":1,"category":{"cat":{"children":{"id":1}}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestNewCategory_NullChildrenHydrateEmpty(t *testing.T) {
	cat, err := NewCategory([]byte(`{"id":25,"title":"غزلیات","children":null,"poems":null,"ancestors":null}`))
	require.NoError(t, err)

	children := cat.Children()
	assert.NotNil(t, children)
	assert.Empty(t, children)
	assert.NotNil(t, cat.Poems())
	assert.NotNil(t, cat.Ancestors())
	assert.Nil(t, cat.Poet())
}

func TestNewCategory_NestedChildrenKeepOrder(t *testing.T) {
	cat, err := NewCategory([]byte(`{"id":1,"children":[{"id":3,"children":[{"id":4}]},{"id":2}]}`))
	require.NoError(t, err)

	children := cat.Children()
	require.Len(t, children, 2)
	assert.Equal(t, 3, children[0].ID)
	assert.Equal(t, 2, children[1].ID)
	grand := children[0].Children()
	require.Len(t, grand, 1)
	assert.Equal(t, 4, grand[0].ID)
}

func TestNewPoet_WithoutCategory(t *testing.T) {
	poet, err := NewPoet([]byte(`{"id":3,"name":"خیام","fullUrl":"/khayyam","published":true}`))
	require.NoError(t, err)
	assert.Equal(t, "/khayyam", poet.FullURL)
	assert.True(t, poet.Published)
	assert.Nil(t, poet.Category())
}
