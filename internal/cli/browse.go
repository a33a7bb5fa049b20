package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/ganjoor/ganjoor"
	"github.com/five82/ganjoor/internal/render"
)

func (r *runner) poetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "poets",
		Short: "List every poet in the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			poets, err := r.session.Client.Poets(cmd.Context())
			if err != nil {
				return err
			}
			s := r.styles(cmd.OutOrStdout())
			lines := make([]string, 0, len(poets))
			for _, p := range poets {
				lines = append(lines, render.PoetLine(p, s))
			}
			return r.print(cmd, strings.Join(lines, "\n"), "No poets.")
		},
	}
}

func (r *runner) poetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "poet <id|url>",
		Short: "Show a poet and their top-level categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseRef(args[0])
			if err != nil {
				return err
			}
			var poet *ganjoor.Poet
			if target.id > 0 {
				poet, err = r.session.Client.PoetByID(cmd.Context(), target.id)
			} else {
				poet, err = r.session.Client.PoetByURL(cmd.Context(), target.url)
			}
			if err != nil {
				return err
			}

			s := r.styles(cmd.OutOrStdout())
			var b strings.Builder
			b.WriteString(render.PoetLine(*poet, s))
			if avatar := r.session.Client.AvatarURL(*poet); avatar != "" {
				b.WriteString("\n" + s.MutedText.Render(avatar))
			}
			if desc := render.HTMLToText(poet.Description); desc != "" {
				b.WriteString("\n\n" + s.Text.Render(desc))
			}
			if cat := poet.Category(); cat != nil {
				b.WriteString("\n\n" + render.CategoryTree(cat, s))
			}
			return r.print(cmd, b.String(), "")
		},
	}
}

func (r *runner) categoryCommand() *cobra.Command {
	var withPoems bool
	cmd := &cobra.Command{
		Use:     "cat <id|url>",
		Aliases: []string{"category"},
		Short:   "Show a category with its children and, optionally, its poems",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseRef(args[0])
			if err != nil {
				return err
			}
			var cat *ganjoor.Category
			if target.id > 0 {
				cat, err = r.session.Client.CategoryByID(cmd.Context(), target.id, withPoems)
			} else {
				cat, err = r.session.Client.CategoryByURL(cmd.Context(), target.url, withPoems)
			}
			if err != nil {
				return err
			}
			return r.print(cmd, render.CategoryTree(cat, r.styles(cmd.OutOrStdout())), fmt.Sprintf("Category %d is empty.", cat.ID))
		},
	}
	cmd.Flags().BoolVar(&withPoems, "poems", false, "Include the category's poem listings")
	return cmd
}
