package ganjoor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Poem is a full poem as returned by the poem endpoints.
type Poem struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	FullTitle     string `json:"full_title"`
	URLSlug       string `json:"url_slug"`
	FullURL       string `json:"full_url"`
	PlainText     string `json:"plain_text"`
	HTMLText      string `json:"html_text"`
	RhymeLetters  string `json:"rhyme_letters"`
	SourceName    string `json:"source_name"`
	SourceURLSlug string `json:"source_url_slug"`
	OldTag        string `json:"old_tag"`
	OldTagPageURL string `json:"old_tag_page_url"`

	links poemLinks
	dec   decoder
}

type poemLinks struct {
	Metre       json.RawMessage `json:"ganjoor_metre"`
	Category    json.RawMessage `json:"category"`
	Next        json.RawMessage `json:"next"`
	Previous    json.RawMessage `json:"previous"`
	Verses      json.RawMessage `json:"verses"`
	Recitations json.RawMessage `json:"recitations"`
	Images      json.RawMessage `json:"images"`
	Songs       json.RawMessage `json:"songs"`
	Comments    json.RawMessage `json:"comments"`
}

// NewPoem hydrates a Poem from its raw remote mapping.
func NewPoem(data []byte) (Poem, error) {
	return decoder{}.poem(data)
}

func (d decoder) poem(raw json.RawMessage) (Poem, error) {
	var p Poem
	if err := d.record(raw, &p, &p.links); err != nil {
		return Poem{}, err
	}
	p.dec = d

	var v validation
	one(&v, "ganjoor_metre", p.links.Metre, leaf[Metre](d))
	if !isNull(p.links.Category) {
		env, err := d.envelope(p.links.Category)
		if err == nil {
			_, _, err = d.pair(env)
		}
		v.check("category", err)
	}
	one(&v, "next", p.links.Next, leaf[IncompletePoem](d))
	one(&v, "previous", p.links.Previous, leaf[IncompletePoem](d))
	list(&v, "verses", p.links.Verses, leaf[Verse](d))
	list(&v, "recitations", p.links.Recitations, leaf[Recitation](d))
	list(&v, "images", p.links.Images, leaf[PoemImage](d))
	list(&v, "songs", p.links.Songs, leaf[Song](d))
	list(&v, "comments", p.links.Comments, d.comment)
	if v.err != nil {
		return Poem{}, v.err
	}
	return p, nil
}

// Metre returns the poem's metre, or nil when the server did not include one.
func (p Poem) Metre() *Metre {
	return lazyOne(p.links.Metre, leaf[Metre](p.dec))
}

// Category returns the category the poem belongs to, with its poet attached.
func (p Poem) Category() *Category {
	_, cat := p.owner()
	return cat
}

// Poet returns the poem's poet, with its category attached.
func (p Poem) Poet() *Poet {
	poet, _ := p.owner()
	return poet
}

func (p Poem) owner() (*Poet, *Category) {
	if isNull(p.links.Category) {
		return nil, nil
	}
	env, err := p.dec.envelope(p.links.Category)
	if err != nil {
		return nil, nil
	}
	poet, cat, err := p.dec.pair(env)
	if err != nil {
		return nil, nil
	}
	return poet, cat
}

// Next returns a summary of the following poem, or nil.
func (p Poem) Next() *IncompletePoem {
	return lazyOne(p.links.Next, leaf[IncompletePoem](p.dec))
}

// Previous returns a summary of the preceding poem, or nil.
func (p Poem) Previous() *IncompletePoem {
	return lazyOne(p.links.Previous, leaf[IncompletePoem](p.dec))
}

// Verses returns the poem's verses in server order.
func (p Poem) Verses() []Verse {
	return lazyList(p.links.Verses, leaf[Verse](p.dec))
}

// Recitations returns the embedded recitations.
func (p Poem) Recitations() []Recitation {
	return lazyList(p.links.Recitations, leaf[Recitation](p.dec))
}

// Images returns the embedded images.
func (p Poem) Images() []PoemImage {
	return lazyList(p.links.Images, leaf[PoemImage](p.dec))
}

// Songs returns the embedded songs.
func (p Poem) Songs() []Song {
	return lazyList(p.links.Songs, leaf[Song](p.dec))
}

// Comments returns the top-level comments; replies hang off each one.
func (p Poem) Comments() []Comment {
	return lazyList(p.links.Comments, p.dec.comment)
}

// PoemQuery selects what the server embeds in a poem response.
// Complete forces every flag on, overriding any flag left false.
type PoemQuery struct {
	Complete      bool
	CategoryInfo  bool
	CategoryPoems bool
	Rhymes        bool
	Recitations   bool
	Images        bool
	Songs         bool
	Comments      bool
	VerseDetails  bool
	Navigation    bool
}

// CompletePoem embeds everything the server offers.
var CompletePoem = PoemQuery{Complete: true}

func (q PoemQuery) resolve() PoemQuery {
	if !q.Complete {
		return q
	}
	return PoemQuery{
		Complete:      true,
		CategoryInfo:  true,
		CategoryPoems: true,
		Rhymes:        true,
		Recitations:   true,
		Images:        true,
		Songs:         true,
		Comments:      true,
		VerseDetails:  true,
		Navigation:    true,
	}
}

func (q PoemQuery) values() url.Values {
	q = q.resolve()
	values := url.Values{}
	values.Set("catInfo", strconv.FormatBool(q.CategoryInfo))
	values.Set("catPoems", strconv.FormatBool(q.CategoryPoems))
	values.Set("rhymes", strconv.FormatBool(q.Rhymes))
	values.Set("recitations", strconv.FormatBool(q.Recitations))
	values.Set("images", strconv.FormatBool(q.Images))
	values.Set("songs", strconv.FormatBool(q.Songs))
	values.Set("comments", strconv.FormatBool(q.Comments))
	values.Set("verseDetails", strconv.FormatBool(q.VerseDetails))
	values.Set("navigation", strconv.FormatBool(q.Navigation))
	return values
}

// PoemByID fetches a poem by id.
func (c *Client) PoemByID(ctx context.Context, id int, query PoemQuery) (*Poem, error) {
	data, err := c.get(ctx, "/api/ganjoor/poem/"+strconv.Itoa(id), query.values())
	if err != nil {
		return nil, err
	}
	return c.decodePoem(data)
}

// PoemByURL fetches a poem by its site path, e.g. "/hafez/ghazal/sh2".
func (c *Client) PoemByURL(ctx context.Context, fullURL string, query PoemQuery) (*Poem, error) {
	values := query.values()
	values.Set("url", fullURL)
	data, err := c.get(ctx, "/api/ganjoor/poem", values)
	if err != nil {
		return nil, err
	}
	return c.decodePoem(data)
}

// RandomPoem fetches a random poem. poetID zero draws from every poet.
func (c *Client) RandomPoem(ctx context.Context, poetID int) (*Poem, error) {
	var values url.Values
	if poetID > 0 {
		values = url.Values{"poetId": {strconv.Itoa(poetID)}}
	}
	data, err := c.getFresh(ctx, "/api/ganjoor/poem/random", values)
	if err != nil {
		return nil, err
	}
	return c.decodePoem(data)
}

// HafezFaal draws a divination ghazal from the divan of Hafez.
func (c *Client) HafezFaal(ctx context.Context) (*Poem, error) {
	data, err := c.getFresh(ctx, "/api/ganjoor/hafez/faal", nil)
	if err != nil {
		return nil, err
	}
	return c.decodePoem(data)
}

const (
	defaultPageNumber      = 1
	defaultSimilarPageSize = 5
	defaultSearchPageSize  = 20
)

// SimilarQuery selects poems sharing a metre and rhyme.
type SimilarQuery struct {
	PageNumber int
	PageSize   int
	Metre      string
	Rhyme      string
	PoetID     int
}

// SimilarPoems lists poems with the same metre and rhyme letters.
func (c *Client) SimilarPoems(ctx context.Context, query SimilarQuery) ([]Poem, error) {
	values := pageValues(query.PageNumber, query.PageSize, defaultSimilarPageSize)
	if metre := strings.TrimSpace(query.Metre); metre != "" {
		values.Set("metre", metre)
	}
	if rhyme := strings.TrimSpace(query.Rhyme); rhyme != "" {
		values.Set("rhyme", rhyme)
	}
	if query.PoetID > 0 {
		values.Set("poetId", strconv.Itoa(query.PoetID))
	}
	data, err := c.get(ctx, "/api/ganjoor/poems/similar", values)
	if err != nil {
		return nil, err
	}
	return c.decodePoems(data)
}

// SearchQuery configures a full-text poem search.
type SearchQuery struct {
	PageNumber int
	PageSize   int
	Term       string
	PoetID     int
	CatID      int
}

// SearchPoems runs a full-text search.
func (c *Client) SearchPoems(ctx context.Context, query SearchQuery) ([]Poem, error) {
	term := strings.TrimSpace(query.Term)
	if term == "" {
		return nil, fmt.Errorf("search term required")
	}
	values := pageValues(query.PageNumber, query.PageSize, defaultSearchPageSize)
	values.Set("term", term)
	if query.PoetID > 0 {
		values.Set("poetId", strconv.Itoa(query.PoetID))
	}
	if query.CatID > 0 {
		values.Set("catId", strconv.Itoa(query.CatID))
	}
	data, err := c.get(ctx, "/api/ganjoor/poems/search", values)
	if err != nil {
		return nil, err
	}
	return c.decodePoems(data)
}

func pageValues(number, size, defaultSize int) url.Values {
	if number <= 0 {
		number = defaultPageNumber
	}
	if size <= 0 {
		size = defaultSize
	}
	values := url.Values{}
	values.Set("PageNumber", strconv.Itoa(number))
	values.Set("PageSize", strconv.Itoa(size))
	return values
}

// PoemRecitations fetches the recitations of a poem.
func (c *Client) PoemRecitations(ctx context.Context, poemID int) ([]Recitation, error) {
	return fetchPoemList(ctx, c, poemID, "recitations", leaf[Recitation](c.dec))
}

// PoemImages fetches the images attached to a poem.
func (c *Client) PoemImages(ctx context.Context, poemID int) ([]PoemImage, error) {
	return fetchPoemList(ctx, c, poemID, "images", leaf[PoemImage](c.dec))
}

// PoemSongs fetches the songs linked to a poem.
func (c *Client) PoemSongs(ctx context.Context, poemID int) ([]Song, error) {
	return fetchPoemList(ctx, c, poemID, "songs", leaf[Song](c.dec))
}

// PoemComments fetches the comment tree of a poem.
func (c *Client) PoemComments(ctx context.Context, poemID int) ([]Comment, error) {
	return fetchPoemList(ctx, c, poemID, "comments", c.dec.comment)
}

func fetchPoemList[T any](ctx context.Context, c *Client, poemID int, resource string, build builder[T]) ([]T, error) {
	path := fmt.Sprintf("/api/ganjoor/poem/%d/%s", poemID, resource)
	data, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	items, err := hydrateList(data, build)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return items, nil
}

func (c *Client) decodePoem(data []byte) (*Poem, error) {
	poem, err := c.dec.poem(data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &poem, nil
}

func (c *Client) decodePoems(data []byte) ([]Poem, error) {
	poems, err := hydrateList(data, c.dec.poem)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return poems, nil
}
