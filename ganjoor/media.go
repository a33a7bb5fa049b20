package ganjoor

import (
	"encoding/json"
	"strings"
)

// Verse is a single line of a poem.
type Verse struct {
	ID            int    `json:"id"`
	VOrder        int    `json:"v_order"`
	CoupletIndex  int    `json:"couplet_index"`
	VersePosition int    `json:"verse_position"`
	Text          string `json:"text"`
}

func (v Verse) String() string {
	return v.Text
}

// NewVerse hydrates a Verse from its raw remote mapping.
func NewVerse(data []byte) (Verse, error) {
	return leaf[Verse](decoder{})(data)
}

// Metre is the rhythmic classification of a poem.
type Metre struct {
	ID          int    `json:"id"`
	URLSlug     string `json:"url_slug"`
	Rhythm      string `json:"rhythm"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VerseCount  int    `json:"verse_count"`
}

// PoemImage is an illustration or manuscript page attached to a poem.
type PoemImage struct {
	ImageOrder           int    `json:"image_order"`
	PoemRelatedImageType int    `json:"poem_related_image_type"`
	ThumbnailImageURL    string `json:"thumbnail_image_url"`
	TargetPageURL        string `json:"target_page_url"`
	AltText              string `json:"alt_text"`
}

// NormalImageURL returns the full resolution variant of the thumbnail URL.
func (i PoemImage) NormalImageURL() string {
	return strings.Replace(i.ThumbnailImageURL, "thumb", "normal", 1)
}

// NewPoemImage hydrates a PoemImage from its raw remote mapping.
func NewPoemImage(data []byte) (PoemImage, error) {
	return leaf[PoemImage](decoder{})(data)
}

// Recitation is an audio reading of a poem.
type Recitation struct {
	ID              int    `json:"id"`
	PoemID          int    `json:"poem_id"`
	PoemFullTitle   string `json:"poem_full_title"`
	PoemFullURL     string `json:"poem_full_url"`
	AudioTitle      string `json:"audio_title"`
	AudioArtist     string `json:"audio_artist"`
	AudioArtistURL  string `json:"audio_artist_url"`
	AudioSrc        string `json:"audio_src"`
	AudioSrcURL     string `json:"audio_src_url"`
	LegacyAudioGUID string `json:"legacy_audio_guid"`
	Mp3FileCheckSum string `json:"mp3_file_check_sum"`
	Mp3SizeInBytes  int64  `json:"mp3_size_in_bytes"`
	PublishDate     string `json:"publish_date"`
	FileLastUpdated string `json:"file_last_updated"`
	Mp3URL          string `json:"mp3_url"`
	XMLText         string `json:"xml_text"`
	PlainText       string `json:"plain_text"`
	HTMLText        string `json:"html_text"`
}

// Song links a poem to a performed track.
type Song struct {
	ID                  int    `json:"id"`
	PoemID              int    `json:"poem_id"`
	TrackType           int    `json:"track_type"`
	ArtistName          string `json:"artist_name"`
	ArtistURL           string `json:"artist_url"`
	AlbumName           string `json:"album_name"`
	AlbumURL            string `json:"album_url"`
	TrackName           string `json:"track_name"`
	TrackURL            string `json:"track_url"`
	Description         string `json:"description"`
	BrokenLink          bool   `json:"broken_link"`
	GolhaTrackID        int    `json:"golha_track_id"`
	Approved            bool   `json:"approved"`
	Rejected            bool   `json:"rejected"`
	RejectedCause       string `json:"rejected_cause"`
	SuggestedByID       string `json:"suggested_by_id"`
	SuggestedByNickname string `json:"suggested_by_nickname"`
}

// IncompletePoem is the reduced projection of a poem used for navigation links and
// category listings. Turning one into a full Poem takes an explicit PoemByID call.
type IncompletePoem struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URLSlug      string `json:"url_slug"`
	Excerpt      string `json:"excerpt"`
	Rhythm       string `json:"rhythm"`
	RhymeLetters string `json:"rhyme_letters"`
}

// Comment is a reader comment on a poem. Replies form a tree.
type Comment struct {
	ID             int     `json:"id"`
	AuthorName     string  `json:"author_name"`
	AuthorURL      string  `json:"author_url"`
	CommentDate    string  `json:"comment_date"`
	HTMLComment    string  `json:"html_comment"`
	PublishStatus  string  `json:"publish_status"`
	InReplyToID    *int    `json:"in_reply_to_id"`
	UserID         *string `json:"user_id"`
	MyComment      bool    `json:"my_comment"`
	CoupletIndex   int     `json:"couplet_index"`
	CoupletSummary string  `json:"couplet_summary"`

	links commentLinks
	dec   decoder
}

type commentLinks struct {
	Replies json.RawMessage `json:"replies"`
}

// NewComment hydrates a Comment and validates its reply tree.
func NewComment(data []byte) (Comment, error) {
	return decoder{}.comment(data)
}

func (d decoder) comment(raw json.RawMessage) (Comment, error) {
	var c Comment
	if err := d.record(raw, &c, &c.links); err != nil {
		return Comment{}, err
	}
	c.dec = d
	var v validation
	list(&v, "replies", c.links.Replies, d.comment)
	return c, v.err
}

// Replies returns the direct replies to this comment in server order.
func (c Comment) Replies() []Comment {
	return lazyList(c.links.Replies, c.dec.comment)
}
