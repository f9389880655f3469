package tui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// chrome is the number of rows used by the header, input and status bar.
const chrome = 6

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	doc    Document
	policy domain.CasePolicy

	styles *styles.Styles
	keymap *keymap.KeyMap

	input  *input.QueryInput
	list   *list.MatchList
	status *status.Bar

	// report is the last search applied to the list.
	report *domain.SearchReport

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application over doc.
func NewApp(ports *Ports, doc Document) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	policy := domain.PolicyFor(doc.IgnoreCase)

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		doc:    doc,
		policy: policy,
		styles: s,
		keymap: km,
		input:  input.NewQueryInput(s, policy),
		list:   list.NewMatchList(s),
		status: status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. The empty query matches every line, so the
// whole document is shown until the user types.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("minigrep - "+filepath.Base(a.doc.Name)),
		a.input.Init(),
		a.search(),
	)
}

// search runs the current query as a command so the result arrives as a
// message.
func (a *App) search() tea.Cmd {
	query, policy := a.input.Value(), a.policy
	return func() tea.Msg {
		return messages.SearchCompleted{
			Query:  query,
			Policy: policy,
			Report: a.ports.Search.SearchText(a.ctx, query, a.doc.Body, policy),
		}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SearchCompleted:
		a.applySearch(msg)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.ToggleCase):
		a.policy = domain.PolicyFor(!a.policy.IgnoresCase())
		a.input.SetPolicy(a.policy)
		return a, a.search()

	case keymap.Matches(keyStr, a.keymap.Up),
		keymap.Matches(keyStr, a.keymap.Down),
		keymap.Matches(keyStr, a.keymap.PageUp),
		keymap.Matches(keyStr, a.keymap.PageDown):
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == before {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.search())
}

// applySearch shows a finished search unless the query or policy has
// changed since it was started.
func (a *App) applySearch(msg messages.SearchCompleted) {
	if msg.Query != a.input.Value() || msg.Policy != a.policy {
		return
	}
	if msg.Report == nil {
		a.status.SetError("search returned no report")
		return
	}
	a.report = msg.Report
	a.list.SetMatches(msg.Report.Matches, msg.Query, msg.Policy)
	a.status.SetCounts(msg.Report.Count(), msg.Report.LinesScanned)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("minigrep") + " " + a.styles.Muted.Render(a.doc.Name)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.input.View(),
		lipgloss.NewStyle().Height(a.list.Height()).Render(a.list.View()),
		a.status.View(),
	)
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.input.Value()
}

// Policy returns the active case policy.
func (a *App) Policy() domain.CasePolicy {
	return a.policy
}

// Report returns the last applied search, or nil before the first one.
func (a *App) Report() *domain.SearchReport {
	return a.report
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and resizes the components.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.list.SetDimensions(width, height-chrome)
	a.status.SetWidth(width)
}
