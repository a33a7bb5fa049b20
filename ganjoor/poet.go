package ganjoor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Poet is an author in the archive.
type Poet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FullURL     string `json:"full_url"`
	RootCatID   int    `json:"root_cat_id"`
	Nickname    string `json:"nickname"`
	Published   bool   `json:"published"`
	ImageURL    string `json:"image_url"`

	raw json.RawMessage
	cat json.RawMessage
	dec decoder
}

// NewPoet hydrates a Poet from its raw remote mapping.
func NewPoet(data []byte) (Poet, error) {
	return decoder{}.poet(nil)(data)
}

// poet returns a builder that attaches cat as the poet's raw root category.
func (d decoder) poet(cat json.RawMessage) builder[Poet] {
	return func(raw json.RawMessage) (Poet, error) {
		var p Poet
		if err := d.record(raw, &p); err != nil {
			return Poet{}, err
		}
		p.raw = raw
		p.cat = cat
		p.dec = d
		return p, nil
	}
}

// Category materializes the category delivered alongside the poet, or nil when the
// poet came from a listing that carries none.
func (p Poet) Category() *Category {
	return lazyOne(p.cat, p.dec.category(p.raw))
}

// envelope is the two-field body of poet and category lookups.
type envelope struct {
	Poet json.RawMessage `json:"poet"`
	Cat  json.RawMessage `json:"cat"`
}

func (d decoder) envelope(data []byte) (envelope, error) {
	var env envelope
	if err := d.record(data, &env); err != nil {
		return envelope{}, err
	}
	return env, nil
}

// pair hydrates both halves of an envelope, each carrying the other's raw mapping.
func (d decoder) pair(env envelope) (*Poet, *Category, error) {
	poet, err := hydrateOne(env.Poet, d.poet(env.Cat))
	if err != nil {
		return nil, nil, fmt.Errorf("poet: %w", err)
	}
	cat, err := hydrateOne(env.Cat, d.category(env.Poet))
	if err != nil {
		return nil, nil, fmt.Errorf("cat: %w", err)
	}
	return poet, cat, nil
}

// Poets lists every poet in the archive.
func (c *Client) Poets(ctx context.Context) ([]Poet, error) {
	data, err := c.get(ctx, "/api/ganjoor/poets", nil)
	if err != nil {
		return nil, err
	}
	poets, err := hydrateList(data, c.dec.poet(nil))
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return poets, nil
}

// PoetByID looks a poet up by numeric id.
func (c *Client) PoetByID(ctx context.Context, id int) (*Poet, error) {
	data, err := c.get(ctx, "/api/ganjoor/poet/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	return c.decodePoet(data)
}

// PoetByURL looks a poet up by its site path, e.g. "/hafez".
func (c *Client) PoetByURL(ctx context.Context, fullURL string) (*Poet, error) {
	data, err := c.get(ctx, "/api/ganjoor/poet", url.Values{"url": {fullURL}})
	if err != nil {
		return nil, err
	}
	return c.decodePoet(data)
}

func (c *Client) decodePoet(data []byte) (*Poet, error) {
	env, err := c.dec.envelope(data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	poet, _, err := c.dec.pair(env)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if poet == nil {
		return nil, fmt.Errorf("decode response: missing poet")
	}
	return poet, nil
}
