package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/components/dropdown"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/views/bus"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/views/commute"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/views/subway"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/views/taxi"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// minCardWidth keeps cards readable on narrow terminals.
const minCardWidth = 28

// card is the input, dropdown and status line of one search domain.
type card struct {
	field    *input.Field
	dropdown *dropdown.Dropdown
	status   string
}

// App is the mirror page following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	log    logger.Scoped

	cards   map[domain.SearchDomain]*card
	arrival *input.Field
	focus   messages.Focus

	taxiView    *taxi.View
	busView     *bus.View
	subwayView  *subway.View
	commuteView *commute.View
	statusBar   *status.Bar

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the mirror page over the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	l := ports.Dashboard.Labels()

	cards := make(map[domain.SearchDomain]*card, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		cards[d] = &card{
			field:    input.NewField(s, "", l.Placeholder),
			dropdown: dropdown.New(s),
		}
	}

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		log:         logger.For("tui"),
		cards:       cards,
		arrival:     input.NewField(s, "", "HH:MM"),
		focus:       messages.FocusTaxi,
		taxiView:    taxi.New(s),
		busView:     bus.New(s),
		subwayView:  subway.New(s),
		commuteView: commute.New(s),
		statusBar:   status.NewBar(s, km),
	}
	a.arrival.SetWidth(minCardWidth)
	a.cards[domain.DomainTaxi].field.Focus()
	a.statusBar.SetFocus(a.focus.String())
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Attach forwards dashboard changes to a running program.
// send is called off the update goroutine so it never blocks Update.
func (a *App) Attach(send func(tea.Msg)) {
	a.ports.Dashboard.Subscribe(func(d domain.SearchDomain) {
		go send(messages.SessionChanged{Domain: d})
	})
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("smartmirror"),
		textinput.Blink,
		a.loadDefaultsCmd(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.SessionChanged:
		a.refresh(msg.Domain)
		return a, a.activity()

	case messages.SearchCompleted:
		a.recordErr(msg.Err)
		a.refresh(msg.Domain)
		return a, a.activity()

	case messages.SelectCompleted:
		a.recordErr(msg.Err)
		a.refresh(msg.Domain)
		if msg.Domain == domain.DomainCommuteDest && msg.Accepted {
			return a, tea.Batch(a.setFocus(messages.FocusArrival), a.activity())
		}
		return a, a.activity()

	case messages.VoiceCompleted:
		a.recordErr(msg.Err)
		a.statusBar.SetVoiceBusy(false)
		a.refresh(domain.DomainTaxi)
		return a, a.activity()

	case messages.CommuteCompleted:
		a.recordErr(msg.Err)
		a.statusBar.SetAmbient(a.ports.Dashboard.Commute().Ambient())
		return a, nil

	case spinner.TickMsg:
		_, cmd := a.statusBar.Update(msg)
		return a, cmd

	case messages.DefaultsLoaded:
		a.recordErr(msg.Err)
		a.refresh(domain.DomainSubway)
		return a, a.activity()
	}
	return a, nil
}

// handleKey routes a key press to the global bindings or the focused input.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	a.ports.Dashboard.Touch(a.ctx)
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return tea.Quit
	case keymap.Matches(k, a.keymap.Next):
		return a.setFocus(a.focus.Next())
	case keymap.Matches(k, a.keymap.Prev):
		return a.setFocus(a.focus.Prev())
	case keymap.Matches(k, a.keymap.Voice):
		return a.voiceCmd()
	case keymap.Matches(k, a.keymap.Calculate):
		return a.calculateCmd()
	case keymap.Matches(k, a.keymap.ClearTaxi):
		a.ports.Dashboard.ClearTaxi()
		return nil
	}

	d, ok := a.focus.Domain()
	if !ok {
		if keymap.Matches(k, a.keymap.Select) {
			return a.calculateCmd()
		}
		cmd, _ := a.arrival.Update(msg)
		return cmd
	}

	c := a.cards[d]
	sess := a.ports.Dashboard.Session(d)

	if c.dropdown.Open() {
		switch {
		case keymap.Matches(k, a.keymap.Up):
			c.dropdown.MoveUp()
			return nil
		case keymap.Matches(k, a.keymap.Down):
			c.dropdown.MoveDown()
			return nil
		case keymap.Matches(k, a.keymap.Select):
			return a.selectCmd(d, c.dropdown.Generation(), c.dropdown.Selected())
		case keymap.Matches(k, a.keymap.Dismiss):
			sess.Dismiss()
			a.refresh(d)
			return nil
		}
	}

	if keymap.Matches(k, a.keymap.Select) {
		return a.searchCmd(d, c.field.Value())
	}

	cmd, changed := c.field.Update(msg)
	if changed {
		sess.OnInput(c.field.Value())
		a.refresh(d)
	}
	return cmd
}

// setFocus moves keyboard focus to f. The card losing focus is dismissed.
func (a *App) setFocus(f messages.Focus) tea.Cmd {
	for _, c := range a.cards {
		c.field.Blur()
	}
	a.arrival.Blur()

	if prev, ok := a.focus.Domain(); ok && f != a.focus {
		a.ports.Dashboard.Session(prev).Dismiss()
		a.refresh(prev)
	}
	a.focus = f
	a.statusBar.SetFocus(f.String())

	d, ok := f.Domain()
	if !ok {
		a.statusBar.SetDropdown(false)
		return a.arrival.Focus()
	}
	a.statusBar.SetDropdown(a.cards[d].dropdown.Open())
	return a.cards[d].field.Focus()
}

// refresh copies the session view of d into its card.
func (a *App) refresh(d domain.SearchDomain) {
	c, ok := a.cards[d]
	if !ok {
		return
	}
	v := a.ports.Dashboard.Session(d).View()
	c.field.Sync(v.Input)
	c.dropdown.SetView(v)
	c.status = v.Status

	if fd, ok := a.focus.Domain(); ok && fd == d {
		a.statusBar.SetDropdown(c.dropdown.Open())
	}
	a.statusBar.SetAmbient(a.ports.Dashboard.Commute().Ambient())
	a.statusBar.SetVoiceBusy(a.ports.Dashboard.Voice().Busy())
}

// activity animates the status bar spinner while a search or a voice
// capture is in flight.
func (a *App) activity() tea.Cmd {
	active := a.ports.Dashboard.Voice().Busy()
	for d := range a.cards {
		if a.ports.Dashboard.Session(d).View().State == domain.StateSearching {
			active = true
		}
	}
	return a.statusBar.SetActivity(active)
}

// recordErr keeps the last error worth surfacing.
// Superseded replies and short queries are routine.
func (a *App) recordErr(err error) {
	if err == nil ||
		errors.Is(err, domain.ErrStaleResponse) ||
		errors.Is(err, domain.ErrQueryTooShort) {
		return
	}
	a.log.Debug("%v", err)
	a.err = err
}

func (a *App) searchCmd(d domain.SearchDomain, text string) tea.Cmd {
	sess := a.ports.Dashboard.Session(d)
	ctx := a.ctx
	return func() tea.Msg {
		err := sess.Search(ctx, text)
		return messages.SearchCompleted{Domain: d, Err: err}
	}
}

func (a *App) selectCmd(d domain.SearchDomain, generation uint64, index int) tea.Cmd {
	sess := a.ports.Dashboard.Session(d)
	ctx := a.ctx
	return func() tea.Msg {
		accepted, err := sess.Select(ctx, generation, index)
		return messages.SelectCompleted{Domain: d, Accepted: accepted, Err: err}
	}
}

func (a *App) calculateCmd() tea.Cmd {
	svc := a.ports.Dashboard.Commute()
	arrive := strings.TrimSpace(a.arrival.Value())
	ctx := a.ctx
	return func() tea.Msg {
		report, err := svc.Calculate(ctx, arrive)
		return messages.CommuteCompleted{Report: report, Err: err}
	}
}

func (a *App) voiceCmd() tea.Cmd {
	voice := a.ports.Dashboard.Voice()
	if voice.Busy() {
		return nil
	}
	a.statusBar.SetVoiceBusy(true)
	ctx := a.ctx
	capture := func() tea.Msg {
		return messages.VoiceCompleted{Err: voice.Capture(ctx)}
	}
	return tea.Batch(capture, a.statusBar.SetActivity(true))
}

func (a *App) loadDefaultsCmd() tea.Cmd {
	dash := a.ports.Dashboard
	ctx := a.ctx
	return func() tea.Msg {
		return messages.DefaultsLoaded{Err: dash.LoadDefaults(ctx)}
	}
}

// View implements tea.Model.
// It renders the current state as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	l := a.ports.Dashboard.Labels()
	dash := a.ports.Dashboard

	taxiPanel, taxiOK := dash.Taxi().Panel()
	busPanel, busOK := dash.Bus().Panel()
	subwayPanel, subwayOK := dash.Subway().Panel()

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderCard(messages.FocusTaxi, l.ModeTaxi, a.taxiView.Render(taxiPanel, taxiOK, l)),
		a.renderCard(messages.FocusBus, l.ModeBus, a.busView.Render(busPanel, busOK, l)),
		a.renderCard(messages.FocusSubway, l.ModeSubway, a.subwayView.Render(subwayPanel, subwayOK, l)),
	)

	page := lipgloss.JoinVertical(lipgloss.Left, top, a.renderCommute(l), a.statusBar.View())
	return a.styles.Frame(dash.Commute().Ambient()).Render(page)
}

func (a *App) cardWidth() int {
	w := (a.width - 8) / 3
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

func (a *App) cardStyle(focused bool) lipgloss.Style {
	if focused {
		return a.styles.FocusedCard.Width(a.cardWidth())
	}
	return a.styles.Card.Width(a.cardWidth())
}

func (a *App) renderCard(f messages.Focus, title, body string) string {
	d, _ := f.Domain()
	c := a.cards[d]

	lines := []string{a.styles.Title.Render(title), c.field.View()}
	if dd := c.dropdown.View(); dd != "" {
		lines = append(lines, dd)
	}
	if c.status != "" {
		lines = append(lines, a.styles.Muted.Render(c.status))
	}
	lines = append(lines, body)
	return a.cardStyle(a.focus == f).Render(strings.Join(lines, "\n"))
}

func (a *App) renderCommute(l *domain.Labels) string {
	c := a.cards[domain.DomainCommuteDest]
	report, statusText := a.ports.Dashboard.Commute().Report()

	lines := []string{a.styles.Title.Render(l.CommuteTitle), c.field.View()}
	if dd := c.dropdown.View(); dd != "" {
		lines = append(lines, dd)
	}
	if c.status != "" {
		lines = append(lines, a.styles.Muted.Render(c.status))
	}
	lines = append(lines, a.styles.Muted.Render(l.ArrivalLabel+" ")+a.arrival.View())
	if statusText != "" {
		lines = append(lines, a.styles.Muted.Render(statusText))
	}
	if body := a.commuteView.Render(report); body != "" {
		lines = append(lines, body)
	}

	focused := a.focus == messages.FocusCommuteDest || a.focus == messages.FocusArrival
	style := a.styles.Card
	if focused {
		style = a.styles.FocusedCard
	}
	return style.Width(a.cardWidth()*3 + 4).Render(strings.Join(lines, "\n"))
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	a.Attach(p.Send)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// Focus returns the focused input.
func (a *App) Focus() messages.Focus {
	return a.focus
}

// Input returns the text of the input owning d.
func (a *App) Input(d domain.SearchDomain) string {
	if c, ok := a.cards[d]; ok {
		return c.field.Value()
	}
	return ""
}

// SetArrival sets the arrival time input.
func (a *App) SetArrival(hhmm string) {
	a.arrival.SetValue(hhmm)
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	for _, c := range a.cards {
		c.field.SetWidth(a.cardWidth())
		c.dropdown.SetWidth(a.cardWidth())
	}
	a.statusBar.SetWidth(width - 2)
}
