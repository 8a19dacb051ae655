package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"moviegrip/internal/config"
	"moviegrip/internal/eventbus"
	"moviegrip/internal/history"
	"moviegrip/internal/search"
	"moviegrip/internal/ui/input"
	inputtypes "moviegrip/internal/ui/input/types"
	"moviegrip/internal/ui/views"
)

// ReadyMarker is appended to the view when Options.ReadyMarker is set
const ReadyMarker = "__READY__"

// rows taken by everything except the result list
const chromeRows = 14

// Options carries the optional collaborators of the model
type Options struct {
	Bus          eventbus.EventBus
	History      history.Recorder
	Logger       *zap.Logger
	InitialQuery string
	ReadyMarker  bool
}

// Model represents the UI state
type Model struct {
	coord   *search.Coordinator
	bus     eventbus.EventBus
	config  *config.Config
	history history.Recorder
	logger  *zap.Logger

	width  int
	height int
	help   help.Model
	keys   keyMap

	selectedIndex  int
	viewportOffset int
	viewportHeight int
	statusMessage  string
	inPagerMode    bool
	initialQuery   string
	readyMarker    bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around the search coordinator
func NewModel(coord *search.Coordinator, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Model{
		coord:          coord,
		bus:            opts.Bus,
		config:         cfg,
		history:        opts.History,
		logger:         logger.Named("ui"),
		help:           help.New(),
		keys:           newKeyMap(),
		viewportHeight: 10, // Will be updated on first WindowSizeMsg
		initialQuery:   opts.InitialQuery,
		readyMarker:    opts.ReadyMarker,
		renderer:       views.NewRenderer(cfg.UISettings.ShowYear),
		helpRenderer:   NewHelpRenderer(),
		inputHandler:   input.New("movie title"),
		pager:          NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Sorted returns the sort flag, used to persist it on exit
func (m *Model) Sorted() bool {
	return m.coord.Sorted()
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init starts the cursor blink and searches for the initial query, if any
func (m *Model) Init() tea.Cmd {
	if m.initialQuery != "" {
		m.inputHandler.SetText(m.initialQuery)
		m.coord.UpdateQuery(m.initialQuery)
		m.coord.Submit()
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case search.DebounceElapsedMsg, search.FetchResolvedMsg:
		if m.coord.Handle(msg) {
			m.clampSelection()
		}
		return m, nil
	}

	if cmd := m.inputHandler.Update(msg); cmd != nil {
		return m, cmd
	}
	return m.handleNonKeyboardMsg(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	snap := m.coord.Snapshot()
	mode := m.inputHandler.CurrentMode()

	state := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		InputView:       m.inputHandler.TextInput().View(),
		InputFocused:    mode == inputtypes.ModeSearch,
		Sorted:          snap.Sorted,
		ValidationError: snap.Error,
		Loading:         snap.Loading,
		Pending:         snap.Pending,
		FetchError:      snap.FetchError,
		Status:          snap.Status,
		Movies:          snap.Movies,
		SelectedIndex:   m.selectedIndex,
		ShowSelection:   mode == inputtypes.ModeResults,
		ViewportOffset:  m.viewportOffset,
		ViewportHeight:  m.viewportHeight,
		StatusMessage:   m.statusMessage,
		HelpView:        m.help.View(m.keys.forMode(mode)),
	}
	if m.history != nil {
		if last, ok := m.history.Last(); ok {
			state.LastSearch = fmt.Sprintf("%s (%d)", last.Query, last.Results)
		}
	}

	out := m.renderer.Render(state)
	if m.readyMarker {
		out += "\n" + ReadyMarker
	}
	return out
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Cursor:    m.selectedIndex,
		Count:     len(m.coord.Movies()),
		QueryText: m.coord.Query(),
		IsLoading: m.coord.Loading(),
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		// Cursor movement reaches us as an update with unchanged text
		if a.Text != m.coord.Query() {
			m.coord.UpdateQuery(a.Text)
		}

	case inputtypes.SubmitAction:
		m.coord.Submit()
		m.resetSelection()

	case inputtypes.ToggleSortAction:
		m.coord.ToggleSort()
		m.resetSelection()

	case inputtypes.OpenResultsPagerAction:
		content := m.helpRenderer.RenderResultsContent(m.coord.Query(), m.coord.Movies(), m.coord.Sorted())
		return m.showPager("results", content)

	case inputtypes.ToggleHelpAction:
		return m.showPager("help", m.helpRenderer.RenderHelpContent(m.config.Search.DebounceMS))

	case inputtypes.QuitAction:
		m.logger.Info("quit requested", zap.Bool("force", a.Force))
		return tea.Quit
	}

	return nil
}

// showPager returns a command that shows content in ov, pausing rendering
func (m *Model) showPager(what, content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{what: what, err: fmt.Errorf("program not set")}
		}
		program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.String("what", msg.what), zap.Error(msg.err))
			err := fmt.Errorf("%s pager: %w", msg.what, msg.err)
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
				return m, nil
			}
			return m, m.setStatus(err.Error())
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message)
	case eventbus.StaleResultDiscardedEvent:
		m.logger.Debug("stale result discarded",
			zap.String("query", e.Query),
			zap.Uint64("generation", e.Generation),
			zap.Uint64("current", e.Current))
	case eventbus.ConfigSavedEvent:
		return m.setStatus("Saved " + e.Path)
	}
	return nil
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) navigate(direction string) {
	total := len(m.coord.Movies())
	if total == 0 {
		return
	}

	pageSize := m.viewportHeight - 2 // Leave some overlap
	if pageSize < 1 {
		pageSize = 1
	}

	switch direction {
	case "up":
		m.selectedIndex--
	case "down":
		m.selectedIndex++
	case "pageup":
		m.selectedIndex -= pageSize
	case "pagedown":
		m.selectedIndex += pageSize
	case "home":
		m.selectedIndex = 0
	case "end":
		m.selectedIndex = total - 1
	}
	m.clampSelection()
}

func (m *Model) resetSelection() {
	m.selectedIndex = 0
	m.viewportOffset = 0
}

// clampSelection keeps the cursor on a result and inside the viewport
func (m *Model) clampSelection() {
	total := len(m.coord.Movies())
	if m.selectedIndex >= total {
		m.selectedIndex = total - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	m.ensureSelectedVisible(total)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible(total int) {
	window := m.viewportHeight
	if total > m.viewportHeight {
		// Scroll indicators take up to two rows
		window = m.viewportHeight - 2
	}
	if window < 1 {
		window = 1
	}

	if m.selectedIndex < m.viewportOffset {
		m.viewportOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.viewportOffset+window {
		m.viewportOffset = m.selectedIndex - window + 1
	}
	if maxOffset := total - window; m.viewportOffset > maxOffset {
		m.viewportOffset = maxOffset
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

func (m *Model) updateViewportHeight() {
	m.viewportHeight = m.height - chromeRows
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
	m.clampSelection()
}
