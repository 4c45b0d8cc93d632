// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/logging"
	"github.com/jeranaias/nvis/internal/session"
	"github.com/jeranaias/nvis/internal/ui/components"
	"github.com/jeranaias/nvis/internal/ui/styles"
)

// Size used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the interactive viewer.
type Model struct {
	session *session.Session
	cfg     *config.Config
	sink    clipboard.Sink
	paste   clipboard.Source
	logger  *zap.Logger

	input  textinput.Model
	keys   KeyMap
	theme  *styles.Theme
	status *components.StatusBar
	help   *components.HelpBar

	width    int
	height   int
	quitting bool
}

// Options configures New. Session and Sink are required.
type Options struct {
	Session *session.Session
	Config  *config.Config
	Theme   *styles.Theme
	Sink    clipboard.Sink
	Paste   clipboard.Source // defaults to the system clipboard
	Logger  *zap.Logger
}

// New creates the viewer model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(cfg.UI.Theme)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.L()
	}
	sess := opts.Session
	if sess == nil {
		sess = session.New(session.Config{Logger: logger})
	}

	paste := opts.Paste
	if paste == nil {
		paste = clipboard.System{}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type text, or 0x.. 0o.. 0b.. in Smart mode"
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputHint
	ti.SetValue(sess.Input())
	ti.Focus()

	m := Model{
		session: sess,
		cfg:     cfg,
		sink:    opts.Sink,
		paste:   paste,
		logger:  logger,
		input:   ti,
		keys:    NewKeyMap(cfg.Keys),
		theme:   theme,
		status:  components.NewStatusBar(theme),
		help:    components.NewHelpBar(theme),
	}
	m.resize(defaultWidth, defaultHeight)
	m.syncStatus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session returns the session the model drives.
func (m Model) Session() *session.Session {
	return m.session
}

// Keys returns the active key map.
func (m Model) Keys() KeyMap {
	return m.keys
}

// StatusText returns the unstyled status line.
func (m Model) StatusText() string {
	return m.status.Text()
}

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.status.SetWidth(width)
	m.help.SetWidth(width)
	m.input.Width = width - len(m.input.Prompt) - 1
}

func (m *Model) syncStatus() {
	m.status.SetState(m.session.Mode(), m.session.Focus())
}
