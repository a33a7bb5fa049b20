package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/ganjoor/internal/app"
)

func (r *runner) readCommand() *cobra.Command {
	var poetID int
	cmd := &cobra.Command{
		Use:   "read [poem-id]",
		Short: "Open the full-screen poem reader",
		Long: `Open the poem reader. Without an id it resumes the last poem read, or draws a
random one (from --poet when given).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.ReadOptions{PoetID: poetID, PrefsPath: r.prefsPath}
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				opts.PoemID = id
			}
			return r.session.Read(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVar(&poetID, "poet", 0, "Restrict random draws to one poet")
	return cmd
}
