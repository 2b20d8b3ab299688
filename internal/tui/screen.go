package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/dongho-jung/droidset/internal/config"
	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/gate"
	"github.com/dongho-jung/droidset/internal/logging"
	"github.com/dongho-jung/droidset/internal/settings"
)

// Focus areas of the settings screen, in tab order.
type focusArea int

const (
	focusFilter focusArea = iota
	focusList
	focusType
	focusValue
)

const focusCount = 4

const maxToasts = 3

// ScreenOptions configures a SettingsScreen.
type ScreenOptions struct {
	Provider settings.Provider
	Checker  gate.Checker

	// Catalog builds the key catalog on activation. Nil uses the built-in
	// Global and System tables.
	Catalog func() *settings.Catalog

	Theme       config.Theme
	DefaultType settings.ValueType
	Backend     string // Shown in the title line

	// Clipboard receives copied values. Nil uses the system clipboard.
	Clipboard func(string) error

	// History remembers written values for recall with up/down in the
	// value field. Nil disables recall.
	History History

	Context context.Context
}

// History stores the values written to each key.
type History interface {
	Record(key settings.Key, typ settings.ValueType, value string) error
	Values(key settings.Key) ([]string, error)
}

// Messages produced by the screen's commands.
type (
	activatedMsg struct {
		catalog *settings.Catalog
		granted bool
		notes   []string
	}

	valueReadMsg struct {
		key    settings.Key
		value  string
		ok     bool
		recent []string
	}

	valueWrittenMsg struct {
		key settings.Key
		err error
	}

	toastExpiredMsg struct {
		id int
	}
)

type toast struct {
	id      int
	text    string
	isError bool
}

// SettingsScreen browses the key catalog and reads/writes the selected key.
// All state lives for one activation of the screen.
type SettingsScreen struct {
	opts     ScreenOptions
	ctx      context.Context
	accessor *settings.Accessor

	catalog  *settings.Catalog
	filtered []int // Indices into catalog in display order
	cursor   int
	offset   int
	shown    settings.Key // Key whose value is displayed
	hasShown bool

	typ    settings.ValueType
	filter textinput.Model
	value  textinput.Model
	focus  focusArea

	current  string
	hasValue bool
	readOnly bool     // current is shown read-only until the field is edited
	recent   []string // Previously written values, most recent first
	recall   int      // Index into recent, -1 while editing the read value
	loading  bool
	granted  bool

	toasts   []toast
	toastSeq int

	isDark bool
	colors ThemeColors
	zones  *zone.Manager
	width  int
	height int

	styles       screenStyles
	stylesCached bool
}

// NewSettingsScreen creates the settings screen.
func NewSettingsScreen(opts ScreenOptions) *SettingsScreen {
	logging.Debug("-> NewSettingsScreen(backend=%s)", opts.Backend)
	defer logging.Debug("<- NewSettingsScreen")

	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Catalog == nil {
		opts.Catalog = settings.DefaultCatalog
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	// Detect dark mode BEFORE bubbletea starts
	isDark := DetectDarkMode(opts.Theme)

	filter := newInput("Type to filter keys...", 100)
	filter.Focus()
	value := newInput(constants.SettingsNull, 0)

	return &SettingsScreen{
		opts:     opts,
		ctx:      opts.Context,
		accessor: settings.NewAccessor(opts.Provider),
		typ:      opts.DefaultType,
		filter:   filter,
		value:    value,
		focus:    focusFilter,
		isDark:   isDark,
		colors:   NewThemeColors(isDark),
		zones:    zone.New(),
		recall:   -1,
		width:    80,
		height:   24,
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 50
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init activates the screen: the permission gate runs and the catalog is
// built.
func (m *SettingsScreen) Init() tea.Cmd {
	checker := m.opts.Checker
	build := m.opts.Catalog
	ctx := m.ctx

	return func() tea.Msg {
		var notes []string
		granted := true
		if checker != nil {
			g := gate.New(checker, gate.NotifierFunc(func(msg string) {
				notes = append(notes, msg)
			}))
			granted = g.EnsureGranted(ctx)
		}
		return activatedMsg{catalog: build(), granted: granted, notes: notes}
	}
}

// Update handles messages.
func (m *SettingsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := min(60, m.width-8)
		if inputWidth > 10 {
			m.filter.Width = inputWidth
			m.value.Width = inputWidth
		}
		m.ensureVisible()
		return m, nil

	case activatedMsg:
		return m, m.activate(msg)

	case valueReadMsg:
		if !m.hasShown || !msg.key.Same(m.shown) {
			logging.Trace("dropping stale read for %s", msg.key.Label())
			return m, nil
		}
		m.loading = false
		m.current = msg.value
		m.hasValue = msg.ok
		m.recent, m.recall = msg.recent, -1
		m.resetValue()
		return m, nil

	case valueWrittenMsg:
		if msg.err != nil {
			return m, m.notify(msg.err.Error(), true)
		}
		if m.hasShown && msg.key.Same(m.shown) {
			m.loading = true
			return m, m.readCmd(msg.key)
		}
		return m, nil

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	return m, m.updateFocusedInput(msg)
}

func (m *SettingsScreen) activate(msg activatedMsg) tea.Cmd {
	m.catalog = msg.catalog
	if m.catalog == nil {
		m.catalog = settings.BuildCatalog()
	}
	m.granted = msg.granted
	logging.Info("settings screen active: %d keys, granted=%v", m.catalog.Len(), m.granted)

	var cmds []tea.Cmd
	for _, note := range msg.notes {
		cmds = append(cmds, m.notify(note, false))
	}
	cmds = append(cmds, m.notify(fmt.Sprintf(constants.MsgFoundKeys, m.catalog.Len()), false))

	m.refilter()
	cmds = append(cmds, m.syncSelection())
	return tea.Batch(cmds...)
}

func (m *SettingsScreen) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true

	case "esc":
		if m.focus == focusValue {
			// Drop the edit and go back to the list.
			m.resetValue()
			m.setFocus(focusList)
			return nil, true
		}
		return tea.Quit, true

	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return nil, true

	case "shift+tab":
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return nil, true

	case "ctrl+s":
		return m.commit(), true

	case "ctrl+y":
		return m.copyValue(), true

	case "up", "ctrl+p":
		if m.focus == focusValue {
			m.recallValue(1)
			return nil, true
		}
		return m.moveCursor(-1), true

	case "down", "ctrl+n":
		if m.focus == focusValue {
			m.recallValue(-1)
			return nil, true
		}
		return m.moveCursor(1), true

	case "pgup", "ctrl+b":
		if m.focus != focusValue {
			return m.moveCursor(-m.visibleRows()), true
		}

	case "pgdown", "ctrl+f":
		if m.focus != focusValue {
			return m.moveCursor(m.visibleRows()), true
		}

	case "enter":
		switch m.focus {
		case focusFilter, focusList, focusType:
			m.setFocus(focusValue)
			return nil, true
		case focusValue:
			return m.commit(), true
		}
	}

	switch m.focus {
	case focusList:
		switch msg.String() {
		case "k":
			return m.moveCursor(-1), true
		case "j":
			return m.moveCursor(1), true
		case "home", "g":
			return m.moveCursor(-len(m.filtered)), true
		case "end", "G":
			return m.moveCursor(len(m.filtered)), true
		case "/":
			m.setFocus(focusFilter)
			return nil, true
		}
		return nil, true

	case focusType:
		switch msg.String() {
		case "left", "h":
			m.cycleType(-1)
		case "right", "l", " ":
			m.cycleType(1)
		}
		return nil, true
	}

	return nil, false
}

func (m *SettingsScreen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		return m.moveCursor(1)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for row := m.offset; row < min(len(m.filtered), m.offset+m.visibleRows()); row++ {
		if m.inZone(rowZoneID(row), msg) {
			m.setFocus(focusList)
			return m.moveCursor(row - m.cursor)
		}
	}
	for _, t := range settings.ValueTypes() {
		if m.inZone(typeZoneID(t), msg) {
			m.typ = t
			m.setFocus(focusType)
			return nil
		}
	}
	if m.inZone(zoneFilter, msg) {
		m.setFocus(focusFilter)
	} else if m.inZone(zoneValue, msg) {
		m.setFocus(focusValue)
	}
	return nil
}

func (m *SettingsScreen) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

func (m *SettingsScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusFilter:
		before := m.filter.Value()
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.refilter()
			return tea.Batch(cmd, m.syncSelection())
		}
	case focusValue:
		before := m.value.Value()
		m.value, cmd = m.value.Update(msg)
		if m.value.Value() != before {
			m.readOnly = false
		}
	}
	return cmd
}

func (m *SettingsScreen) setFocus(f focusArea) {
	m.focus = f
	m.filter.Blur()
	m.value.Blur()
	switch f {
	case focusFilter:
		m.filter.Focus()
	case focusValue:
		m.value.Focus()
		m.value.CursorEnd()
	}
}

func (m *SettingsScreen) cycleType(delta int) {
	types := settings.ValueTypes()
	idx := 0
	for i, t := range types {
		if t == m.typ {
			idx = i
			break
		}
	}
	m.typ = types[(idx+delta+len(types))%len(types)]
}

// refilter recomputes the visible keys from the filter text, keeping the
// selected key when it still matches.
func (m *SettingsScreen) refilter() {
	if m.catalog == nil {
		return
	}
	prev, hadPrev := m.selectedKey()

	m.filtered = m.catalog.Search(m.filter.Value())
	m.cursor = 0
	if hadPrev {
		for i, idx := range m.filtered {
			if m.catalog.At(idx).Same(prev) {
				m.cursor = i
				break
			}
		}
	}
	m.ensureVisible()
}

func (m *SettingsScreen) moveCursor(delta int) tea.Cmd {
	if len(m.filtered) == 0 {
		return nil
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.filtered)-1))
	m.ensureVisible()
	return m.syncSelection()
}

func (m *SettingsScreen) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(0, min(m.offset, max(0, len(m.filtered)-rows)))
}

func (m *SettingsScreen) selectedKey() (settings.Key, bool) {
	if m.catalog == nil || m.cursor < 0 || m.cursor >= len(m.filtered) {
		return settings.Key{}, false
	}
	return m.catalog.At(m.filtered[m.cursor]), true
}

// syncSelection reads the selected key when it differs from the displayed
// one.
func (m *SettingsScreen) syncSelection() tea.Cmd {
	key, ok := m.selectedKey()
	if !ok {
		m.hasShown = false
		m.loading = false
		m.current, m.hasValue, m.readOnly = "", false, false
		m.value.SetValue("")
		logging.Global().SetKey("")
		return nil
	}
	if m.hasShown && key.Same(m.shown) {
		return nil
	}
	m.shown, m.hasShown = key, true
	logging.Global().SetKey(key.Name)
	m.loading = true
	m.current, m.hasValue, m.readOnly = "", false, false
	m.recent, m.recall = nil, -1
	m.value.SetValue("")
	return m.readCmd(key)
}

func (m *SettingsScreen) readCmd(key settings.Key) tea.Cmd {
	acc, ctx, hist := m.accessor, m.ctx, m.opts.History
	return func() tea.Msg {
		value, ok := acc.Read(ctx, key)
		msg := valueReadMsg{key: key, value: value, ok: ok}
		if hist != nil {
			recent, err := hist.Values(key)
			if err != nil {
				logging.Warn("history: %v", err)
			}
			msg.recent = recent
		}
		return msg
	}
}

// recallValue steps through the written values of the shown key. Stepping
// past the newest one restores the value that was read.
func (m *SettingsScreen) recallValue(step int) {
	if len(m.recent) == 0 {
		return
	}
	next := max(-1, min(m.recall+step, len(m.recent)-1))
	if next == m.recall {
		return
	}
	m.recall = next
	if next == -1 {
		m.resetValue()
		return
	}
	m.readOnly = false
	m.value.SetValue(m.recent[next])
	m.value.CursorEnd()
}

// resetValue puts the read value back into the field. A value the
// single-line field would alter is left out of it and shown read-only.
func (m *SettingsScreen) resetValue() {
	m.readOnly = m.hasValue && !fitsField(m.current)
	if m.readOnly {
		m.value.SetValue("")
		return
	}
	m.value.SetValue(m.current)
	m.value.CursorEnd()
}

// fitsField reports whether the value field can hold s unchanged. The
// field replaces tabs and newlines and drops other control characters.
func fitsField(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func (m *SettingsScreen) commit() tea.Cmd {
	key, ok := m.selectedKey()
	if !ok {
		return nil
	}
	if m.readOnly {
		return m.notify(constants.MsgValueNotEdited, true)
	}
	acc, ctx, hist := m.accessor, m.ctx, m.opts.History
	typ, raw := m.typ, m.value.Value()
	return func() tea.Msg {
		if err := acc.Write(ctx, key, typ, raw); err != nil {
			return valueWrittenMsg{key: key, err: err}
		}
		if hist != nil {
			if err := hist.Record(key, typ, raw); err != nil {
				logging.Warn("history: %v", err)
			}
		}
		return valueWrittenMsg{key: key}
	}
}

func (m *SettingsScreen) copyValue() tea.Cmd {
	if !m.hasValue {
		return nil
	}
	if err := m.opts.Clipboard(m.current); err != nil {
		logging.Warn("clipboard: %v", err)
		return m.notify(err.Error(), true)
	}
	return m.notify(constants.MsgValueCopied, false)
}

func (m *SettingsScreen) notify(text string, isError bool) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toasts = append(m.toasts, toast{id: id, text: text, isError: isError})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}

	d := constants.ToastDuration
	if isError {
		d = constants.ToastErrorDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *SettingsScreen) visibleRows() int {
	// Title, filter box, type row, value box, toasts and help.
	const reserved = 14
	return max(3, min(constants.MaxVisibleKeys, m.height-reserved))
}

// Close releases the screen's mouse zones.
func (m *SettingsScreen) Close() {
	m.zones.Close()
}

// Zone ids.
const (
	zoneFilter = "filter"
	zoneValue  = "value"
)

func rowZoneID(row int) string {
	return "row-" + strconv.Itoa(row)
}

func typeZoneID(t settings.ValueType) string {
	return "type-" + t.String()
}

type screenStyles struct {
	title        lipgloss.Style
	subtitle     lipgloss.Style
	box          lipgloss.Style
	boxFocused   lipgloss.Style
	item         lipgloss.Style
	selected     lipgloss.Style
	dim          lipgloss.Style
	label        lipgloss.Style
	typeItem     lipgloss.Style
	typeSelected lipgloss.Style
	toast        lipgloss.Style
	toastError   lipgloss.Style
	help         lipgloss.Style
}

// RunSettingsScreen runs the settings screen until the user quits.
func RunSettingsScreen(opts ScreenOptions) error {
	m := NewSettingsScreen(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("settings screen: %w", err)
	}
	return nil
}
