package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/ganjoor/internal/app"
	"github.com/five82/ganjoor/internal/prefs"
	"github.com/five82/ganjoor/internal/render"
)

// runner holds the flags shared by every command and the session they open.
type runner struct {
	configPath string
	prefsPath  string
	verbose    bool
	noCache    bool

	// logger replaces the stderr logger when set.
	logger  *zap.Logger
	session *app.Session
}

// Execute runs the ganjoor command line with os.Args.
func Execute(ctx context.Context) error {
	root, r := newRootCommand()
	defer r.close()
	return root.ExecuteContext(ctx)
}

func newRootCommand() (*cobra.Command, *runner) {
	r := &runner{}
	root := &cobra.Command{
		Use:           "ganjoor",
		Short:         "Browse and read the Ganjoor Persian poetry archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || (cmd.HasParent() && cmd.Parent().Name() == "completion") {
				return nil
			}
			return r.open()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&r.configPath, "config", "", "Path to configuration file (default ~/.config/ganjoor/config.toml)")
	flags.StringVar(&r.prefsPath, "prefs", "", "Path to reader preferences (default ~/.config/ganjoor/prefs.toml)")
	flags.BoolVarP(&r.verbose, "verbose", "v", false, "Log every request to stderr")
	flags.BoolVar(&r.noCache, "no-cache", false, "Bypass the on-disk response cache")

	root.AddCommand(
		r.poetsCommand(),
		r.poetCommand(),
		r.categoryCommand(),
		r.poemCommand(),
		r.randomCommand(),
		r.faalCommand(),
		r.similarCommand(),
		r.searchCommand(),
		r.recitationsCommand(),
		r.imagesCommand(),
		r.songsCommand(),
		r.commentsCommand(),
		r.loginCommand(),
		r.bookmarksCommand(),
		r.readCommand(),
		r.cacheCommand(),
	)
	return root, r
}

func (r *runner) open() error {
	if r.session != nil {
		return nil
	}
	s, err := app.Open(app.Options{
		ConfigPath: r.configPath,
		Verbose:    r.verbose,
		NoCache:    r.noCache,
		Logger:     r.logger,
	})
	if err != nil {
		return err
	}
	r.session = s
	return nil
}

func (r *runner) close() {
	if r.session != nil {
		_ = r.session.Close()
		r.session = nil
	}
}

// styles colors output for terminals using the reader's saved theme.
func (r *runner) styles(w io.Writer) render.Styles {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return render.Plain()
	}
	p, _ := prefs.Load(r.prefsPath)
	return render.GetTheme(p.Theme).Styles()
}

// print writes text followed by a newline, or a placeholder when text is empty.
func (r *runner) print(cmd *cobra.Command, text, empty string) error {
	out := cmd.OutOrStdout()
	if strings.TrimSpace(text) == "" {
		text = r.styles(out).MutedText.Render(empty)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

// ref is a command argument naming an entity by id or by site path.
type ref struct {
	id  int
	url string
}

func parseRef(arg string) (ref, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ref{}, errors.New("id or url required")
	}
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return ref{}, fmt.Errorf("invalid id %d", id)
		}
		return ref{id: id}, nil
	}
	return ref{url: arg}, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid poem id %q", arg)
	}
	return id, nil
}
