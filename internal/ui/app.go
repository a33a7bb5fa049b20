package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/ganjoor/ganjoor"
	"github.com/five82/ganjoor/internal/prefs"
	"github.com/five82/ganjoor/internal/render"
)

// PoemSource is the subset of the ganjoor client the reader needs.
type PoemSource interface {
	PoemByID(ctx context.Context, id int, query ganjoor.PoemQuery) (*ganjoor.Poem, error)
	RandomPoem(ctx context.Context, poetID int) (*ganjoor.Poem, error)
	HafezFaal(ctx context.Context) (*ganjoor.Poem, error)
}

var _ PoemSource = (*ganjoor.Client)(nil)

// readerQuery asks for what the reader shows: breadcrumb, navigation and comments.
var readerQuery = ganjoor.PoemQuery{CategoryInfo: true, Navigation: true, Comments: true}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    PoemSource
	Logger    *zap.Logger
	PoemID    int // Poem to open; zero resumes the last poem or draws a random one
	PoetID    int // Restricts random draws to one poet
	PrefsPath string
	Prefs     prefs.Prefs
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	source    PoemSource
	logger    *zap.Logger
	prefsPath string
	prefs     prefs.Prefs
	startID   int
	poetID    int

	// UI state
	theme        render.Theme
	keys         keyMap
	help         help.Model
	viewport     viewport.Model
	width        int
	height       int
	ready        bool
	showHelp     bool
	showComments bool

	// Data state
	poem    *ganjoor.Poem
	loading bool
	err     error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	theme := render.GetTheme(opts.Prefs.Theme)
	p := opts.Prefs
	p.Theme = theme.Name

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		logger:    logger,
		prefsPath: prefsPath,
		prefs:     p,
		startID:   opts.PoemID,
		poetID:    opts.PoetID,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),

		showComments: p.ShowComments,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	switch {
	case m.startID > 0:
		return fetchPoemCmd(m.ctx, m.source, m.startID)
	case m.prefs.LastPoemID > 0:
		return fetchPoemCmd(m.ctx, m.source, m.prefs.LastPoemID)
	default:
		return fetchRandomCmd(m.ctx, m.source, m.poetID)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.bodyHeight())
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.bodyHeight()
		}
		m.ready = true
		m.refreshContent()
		return m, nil

	case poemMsg:
		m.poem = msg.poem
		m.loading = false
		m.err = nil
		m.prefs.LastPoemID = msg.poem.ID
		m.savePrefs()
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		m.logger.Warn("poem fetch failed", zap.Error(msg.err))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = render.GetTheme(render.NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.ToggleComments):
		m.showComments = !m.showComments
		m.prefs.ShowComments = m.showComments
		m.savePrefs()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.follow(m.nextID())

	case key.Matches(msg, m.keys.Previous):
		return m.follow(m.previousID())

	case key.Matches(msg, m.keys.Random):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, fetchRandomCmd(m.ctx, m.source, m.poetID)

	case key.Matches(msg, m.keys.Faal):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, fetchFaalCmd(m.ctx, m.source)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// follow fetches the poem with the given id; zero means there is nowhere to go.
func (m Model) follow(id int) (tea.Model, tea.Cmd) {
	if id == 0 || m.loading {
		return m, nil
	}
	m.loading = true
	return m, fetchPoemCmd(m.ctx, m.source, id)
}

func (m Model) nextID() int {
	if m.poem == nil {
		return 0
	}
	if next := m.poem.Next(); next != nil {
		return next.ID
	}
	return 0
}

func (m Model) previousID() int {
	if m.poem == nil {
		return 0
	}
	if prev := m.poem.Previous(); prev != nil {
		return prev.ID
	}
	return 0
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.poem == nil {
		return ""
	}
	styles := m.theme.Styles()
	body := render.Poem(m.poem, styles)
	if m.showComments {
		comments := render.CommentTree(m.poem.Comments(), styles)
		if comments == "" {
			comments = styles.MutedText.Render("No comments.")
		}
		body += "\n\n" + styles.Number.Render(strings.Repeat("─", 30)) + "\n\n" + comments
	}
	return body
}

func (m Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// bodyHeight leaves one line each for the header and footer.
func (m Model) bodyHeight() int {
	return max(m.height-2, 1)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
