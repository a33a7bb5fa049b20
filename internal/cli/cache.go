package cli

import (
	"github.com/spf13/cobra"
)

func (r *runner) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk response cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.session.PurgeCache(); err != nil {
				return err
			}
			return r.print(cmd, "Cache cleared.", "")
		},
	})
	return cmd
}
