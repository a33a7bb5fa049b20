package ganjoor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Category is a node of a poet's work tree (divan, section, book...).
type Category struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URLSlug string `json:"url_slug"`
	FullURL string `json:"full_url"`

	links categoryLinks
	raw   json.RawMessage
	poet  json.RawMessage
	dec   decoder
}

type categoryLinks struct {
	Children  json.RawMessage `json:"children"`
	Poems     json.RawMessage `json:"poems"`
	Next      json.RawMessage `json:"next"`
	Previous  json.RawMessage `json:"previous"`
	Ancestors json.RawMessage `json:"ancestors"`
}

// NewCategory hydrates a Category from its raw remote mapping.
func NewCategory(data []byte) (Category, error) {
	return decoder{}.category(nil)(data)
}

// category returns a builder that attaches poet as the owning poet's raw mapping.
// Related categories share the same owner.
func (d decoder) category(poet json.RawMessage) builder[Category] {
	var build builder[Category]
	build = func(raw json.RawMessage) (Category, error) {
		var c Category
		if err := d.record(raw, &c, &c.links); err != nil {
			return Category{}, err
		}
		c.raw = raw
		c.poet = poet
		c.dec = d

		var v validation
		list(&v, "children", c.links.Children, build)
		list(&v, "poems", c.links.Poems, leaf[IncompletePoem](d))
		one(&v, "next", c.links.Next, build)
		one(&v, "previous", c.links.Previous, build)
		list(&v, "ancestors", c.links.Ancestors, build)
		if v.err != nil {
			return Category{}, v.err
		}
		return c, nil
	}
	return build
}

// Children returns the sub-categories in server order.
func (c Category) Children() []Category {
	return lazyList(c.links.Children, c.dec.category(c.poet))
}

// Poems returns the poem listings of this category. They are summaries; fetch a
// full poem with PoemByID.
func (c Category) Poems() []IncompletePoem {
	return lazyList(c.links.Poems, leaf[IncompletePoem](c.dec))
}

// Next returns the following sibling category, or nil.
func (c Category) Next() *Category {
	return lazyOne(c.links.Next, c.dec.category(c.poet))
}

// Previous returns the preceding sibling category, or nil.
func (c Category) Previous() *Category {
	return lazyOne(c.links.Previous, c.dec.category(c.poet))
}

// Ancestors returns the path from the root category down to the parent.
func (c Category) Ancestors() []Category {
	return lazyList(c.links.Ancestors, c.dec.category(c.poet))
}

// Poet returns the owning poet, or nil when the response carried none.
func (c Category) Poet() *Poet {
	return lazyOne(c.poet, c.dec.poet(c.raw))
}

// CategoryByID looks a category up by id. withPoems asks the server to embed the
// category's poem listings.
func (c *Client) CategoryByID(ctx context.Context, id int, withPoems bool) (*Category, error) {
	query := url.Values{"poems": {strconv.FormatBool(withPoems)}}
	data, err := c.get(ctx, "/api/ganjoor/cat/"+strconv.Itoa(id), query)
	if err != nil {
		return nil, err
	}
	return c.decodeCategory(data)
}

// CategoryByURL looks a category up by its site path, e.g. "/hafez/ghazal".
func (c *Client) CategoryByURL(ctx context.Context, fullURL string, withPoems bool) (*Category, error) {
	query := url.Values{
		"url":   {fullURL},
		"poems": {strconv.FormatBool(withPoems)},
	}
	data, err := c.get(ctx, "/api/ganjoor/cat", query)
	if err != nil {
		return nil, err
	}
	return c.decodeCategory(data)
}

func (c *Client) decodeCategory(data []byte) (*Category, error) {
	env, err := c.dec.envelope(data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	_, cat, err := c.dec.pair(env)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("decode response: missing cat")
	}
	return cat, nil
}
