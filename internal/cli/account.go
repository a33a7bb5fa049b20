package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (r *runner) loginCommand() *cobra.Command {
	var showToken bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials against the server",
		Long: `Sign in with the username from the config file (or GANJOOR_USERNAME) and the
password from GANJOOR_PASSWORD. Tokens are not stored between runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.session.Login(cmd.Context()); err != nil {
				return err
			}
			if showToken {
				return r.print(cmd, r.session.Client.Token(), "")
			}
			return r.print(cmd, fmt.Sprintf("Logged in as %s.", r.session.Config.Username), "")
		},
	}
	cmd.Flags().BoolVar(&showToken, "token", false, "Print the bearer token instead of a greeting")
	return cmd
}

func (r *runner) bookmarksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "Print the signed-in user's bookmarks as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.session.Login(cmd.Context()); err != nil {
				return err
			}
			raw, err := r.session.Client.Bookmarks(cmd.Context())
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return fmt.Errorf("format bookmarks: %w", err)
			}
			return r.print(cmd, out.String(), "")
		},
	}
}
