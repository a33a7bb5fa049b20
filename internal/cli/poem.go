package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/ganjoor/ganjoor"
	"github.com/five82/ganjoor/internal/render"
)

func (r *runner) poemCommand() *cobra.Command {
	var q ganjoor.PoemQuery
	cmd := &cobra.Command{
		Use:   "poem <id|url>",
		Short: "Print a poem",
		Long: `Print a poem by id or by site path such as /hafez/ghazal/sh2.

Embedding flags ask the server for related data; --complete turns all of them on.
Attached comments are printed under the poem.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseRef(args[0])
			if err != nil {
				return err
			}
			var poem *ganjoor.Poem
			if target.id > 0 {
				poem, err = r.session.Client.PoemByID(cmd.Context(), target.id, q)
			} else {
				poem, err = r.session.Client.PoemByURL(cmd.Context(), target.url, q)
			}
			if err != nil {
				return err
			}
			return r.printPoem(cmd, poem, true)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&q.Complete, "complete", false, "Embed everything the server offers")
	f.BoolVar(&q.CategoryInfo, "cat-info", true, "Embed the owning category and poet")
	f.BoolVar(&q.CategoryPoems, "cat-poems", false, "Embed the sibling poem listings")
	f.BoolVar(&q.Rhymes, "rhymes", false, "Embed rhyme letters")
	f.BoolVar(&q.Recitations, "recitations", false, "Embed recitations")
	f.BoolVar(&q.Images, "images", false, "Embed related images")
	f.BoolVar(&q.Songs, "songs", false, "Embed related songs")
	f.BoolVar(&q.Comments, "comments", false, "Embed and print comments")
	f.BoolVar(&q.VerseDetails, "verse-details", false, "Embed per-verse details")
	f.BoolVar(&q.Navigation, "navigation", false, "Embed next/previous poem summaries")
	return cmd
}

func (r *runner) randomCommand() *cobra.Command {
	var poetID int
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random poem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			poem, err := r.session.Client.RandomPoem(cmd.Context(), poetID)
			if err != nil {
				return err
			}
			return r.printPoem(cmd, poem, false)
		},
	}
	cmd.Flags().IntVar(&poetID, "poet", 0, "Draw only from this poet's works")
	return cmd
}

func (r *runner) faalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "faal",
		Short: "Draw a Hafez divination ghazal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			poem, err := r.session.Client.HafezFaal(cmd.Context())
			if err != nil {
				return err
			}
			return r.printPoem(cmd, poem, false)
		},
	}
}

func (r *runner) printPoem(cmd *cobra.Command, poem *ganjoor.Poem, withComments bool) error {
	s := r.styles(cmd.OutOrStdout())
	text := render.Poem(poem, s)
	if comments := poem.Comments(); withComments && len(comments) > 0 {
		text += "\n\n" + render.CommentTree(comments, s)
	}
	return r.print(cmd, text, "")
}

func (r *runner) similarCommand() *cobra.Command {
	var q ganjoor.SimilarQuery
	cmd := &cobra.Command{
		Use:   "similar",
		Short: "List poems sharing a metre and rhyme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			poems, err := r.session.Client.SimilarPoems(cmd.Context(), q)
			if err != nil {
				return err
			}
			return r.print(cmd, render.PoemList(poems, r.styles(cmd.OutOrStdout())), "No similar poems.")
		},
	}
	f := cmd.Flags()
	f.StringVar(&q.Metre, "metre", "", "Metre rhythm, e.g. \"مفعول فاعلات مفاعیل فاعلن\"")
	f.StringVar(&q.Rhyme, "rhyme", "", "Rhyme letters")
	f.IntVar(&q.PoetID, "poet", 0, "Restrict to one poet")
	f.IntVar(&q.PageNumber, "page", 1, "Page number")
	f.IntVar(&q.PageSize, "size", 0, "Page size (client default when zero)")
	return cmd
}

func (r *runner) searchCommand() *cobra.Command {
	var q ganjoor.SearchQuery
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Full-text search across poems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Term = args[0]
			poems, err := r.session.Client.SearchPoems(cmd.Context(), q)
			if err != nil {
				return err
			}
			return r.print(cmd, render.PoemList(poems, r.styles(cmd.OutOrStdout())), "No matches.")
		},
	}
	f := cmd.Flags()
	f.IntVar(&q.PoetID, "poet", 0, "Restrict to one poet")
	f.IntVar(&q.CatID, "cat", 0, "Restrict to one category")
	f.IntVar(&q.PageNumber, "page", 1, "Page number")
	f.IntVar(&q.PageSize, "size", 0, "Page size (client default when zero)")
	return cmd
}

// poemListCommand builds the commands that list one kind of data attached to a poem.
func poemListCommand[T any](r *runner, use, short, empty string,
	fetch func(*ganjoor.Client, context.Context, int) ([]T, error),
	format func([]T, render.Styles) string,
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <poem-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			items, err := fetch(r.session.Client, cmd.Context(), id)
			if err != nil {
				return err
			}
			return r.print(cmd, format(items, r.styles(cmd.OutOrStdout())), empty)
		},
	}
}

func (r *runner) recitationsCommand() *cobra.Command {
	return poemListCommand(r, "recitations", "List audio recitations of a poem", "No recitations.",
		(*ganjoor.Client).PoemRecitations, render.RecitationList)
}

func (r *runner) imagesCommand() *cobra.Command {
	return poemListCommand(r, "images", "List images related to a poem", "No images.",
		(*ganjoor.Client).PoemImages, render.ImageList)
}

func (r *runner) songsCommand() *cobra.Command {
	return poemListCommand(r, "songs", "List songs that set a poem to music", "No songs.",
		(*ganjoor.Client).PoemSongs, render.SongList)
}

func (r *runner) commentsCommand() *cobra.Command {
	return poemListCommand(r, "comments", "Show a poem's comment threads", "No comments.",
		(*ganjoor.Client).PoemComments, render.CommentTree)
}
