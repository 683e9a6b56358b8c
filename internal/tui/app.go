package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/widgetdemo/internal/demo"
)

// Options configures the root view.
type Options struct {
	DateFormat string
	Location   *time.Location
	Now        func() time.Time
}

// App is the root view. It owns no widget state of its own beyond focus and
// transient presentation; everything the widgets display comes from the store.
type App struct {
	store   *demo.Store
	opts    Options
	keys    keyMap
	calKeys calendarKeys

	help     help.Model
	spinner  spinner.Model
	progress progress.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	focus        focusTarget
	followFocus  bool
	pickerOpen   bool
	pickerCursor int
	typeahead    string
	calendar     calendar
	notices      []notice
	status       string
	content      string
}

type focusTarget int

const (
	focusSwitch focusTarget = iota
	focusPress
	focusPicker
	focusDate
	focusSimulate
	focusCount
)

type notice struct {
	title   string
	message string
}

const (
	progressWidth    = 30
	defaultWidth     = 72
	pressLabel       = "Press here"
	dateButtonLabel  = "Pick a date"
	simulateLabel    = "Simulate progress"
	noticeDismissKey = "[enter] OK"
)

func New(store *demo.Store, opts Options) *App {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DateFormat == "" {
		opts.DateFormat = store.Settings().DateFormat
	}
	a := &App{
		store:   store,
		opts:    opts,
		keys:    defaultKeyMap(),
		calKeys: defaultCalendarKeys(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		progress: progress.New(
			progress.WithSolidFill(string(colorPrimary)),
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
		),
	}
	a.sync()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.spinner.Tick
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
	case spinner.TickMsg:
		a.spinner, cmd = a.spinner.Update(m)
	case progressTickMsg:
		cmd = a.dispatch(m.tick)
	case tea.MouseMsg:
		if a.ready && len(a.notices) == 0 {
			a.viewport, cmd = a.viewport.Update(m)
		}
		return a, cmd
	case tea.KeyMsg:
		cmd = a.handleKey(m)
	}
	a.sync()
	return a, cmd
}

func (a *App) View() string {
	body := a.content
	if a.ready {
		body = a.viewport.View()
	}
	view := body + "\n" + a.renderStatus() + "\n" + a.renderHelp()
	if len(a.notices) > 0 {
		view = renderPopup(view, a.renderNotice(a.notices[0]), a.width, a.height)
	}
	return view
}

// messages
type progressTickMsg struct {
	tick demo.ProgressTick
}

// dispatch sends action through the store and turns the returned effects into
// commands.
func (a *App) dispatch(action demo.Action) tea.Cmd {
	return a.runEffects(a.store.Dispatch(action))
}

func (a *App) runEffects(effects []demo.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case demo.Notify:
			a.notices = append(a.notices, notice{title: e.Title, message: e.Message})
		case demo.Schedule:
			tick := e.Tick
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return progressTickMsg{tick: tick}
			}))
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if m.String() == "ctrl+c" {
		return tea.Quit
	}
	// Notifications are modal: nothing else gets input until they are gone.
	if len(a.notices) > 0 {
		if key.Matches(m, a.keys.Activate, a.keys.Dismiss) {
			a.notices = a.notices[1:]
		}
		return nil
	}
	st := a.store.State()
	if st.DatePickerVisible {
		return a.handleCalendarKey(m)
	}
	if a.pickerOpen {
		return a.handlePickerKey(m)
	}

	a.status = ""
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Remount):
		a.remount()
	case key.Matches(m, a.keys.Next):
		a.focus = (a.focus + 1) % focusCount
		a.followFocus = true
	case key.Matches(m, a.keys.Prev):
		a.focus = (a.focus + focusCount - 1) % focusCount
		a.followFocus = true
	case key.Matches(m, a.keys.PageUp):
		a.viewport.SetYOffset(a.viewport.YOffset - a.viewport.Height)
	case key.Matches(m, a.keys.PageDown):
		a.viewport.SetYOffset(a.viewport.YOffset + a.viewport.Height)
	case key.Matches(m, a.keys.Left):
		if a.focus == focusPicker {
			return a.cycleOption(-1)
		}
	case key.Matches(m, a.keys.Right):
		if a.focus == focusPicker {
			return a.cycleOption(1)
		}
	case key.Matches(m, a.keys.Activate):
		return a.activate(st)
	}
	return nil
}

func (a *App) activate(st demo.State) tea.Cmd {
	a.followFocus = true
	switch a.focus {
	case focusSwitch:
		return a.dispatch(demo.Toggle{})
	case focusPress:
		return a.dispatch(demo.Press{})
	case focusPicker:
		a.pickerOpen = true
		a.pickerCursor = max(0, demo.OptionIndex(st.SelectedOption))
		a.typeahead = ""
	case focusDate:
		a.calendar = newCalendar(st.SelectedDate)
		return a.dispatch(demo.OpenDatePicker{})
	case focusSimulate:
		if !st.CanSimulate() {
			if st.ProgressPending {
				a.status = "progress update already pending"
			} else {
				a.status = "progress is complete"
			}
			return nil
		}
		return a.dispatch(demo.SimulateProgress{})
	}
	return nil
}

func (a *App) cycleOption(delta int) tea.Cmd {
	opts := demo.Options()
	idx := max(0, demo.OptionIndex(a.store.State().SelectedOption))
	next := (idx + delta + len(opts)) % len(opts)
	return a.dispatch(demo.SelectOption{Value: opts[next].Value})
}

func (a *App) handlePickerKey(m tea.KeyMsg) tea.Cmd {
	opts := demo.Options()
	switch m.Type {
	case tea.KeyEsc:
		a.pickerOpen = false
		a.typeahead = ""
	case tea.KeyUp:
		if a.pickerCursor > 0 {
			a.pickerCursor--
		}
	case tea.KeyDown:
		if a.pickerCursor < len(opts)-1 {
			a.pickerCursor++
		}
	case tea.KeyEnter, tea.KeySpace:
		a.pickerOpen = false
		a.typeahead = ""
		return a.dispatch(demo.SelectOption{Value: opts[a.pickerCursor].Value})
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if r := []rune(a.typeahead); len(r) > 0 {
			a.typeahead = string(r[:len(r)-1])
		}
		a.applyTypeahead()
	case tea.KeyRunes:
		a.typeahead += string(m.Runes)
		a.applyTypeahead()
	}
	return nil
}

func (a *App) applyTypeahead() {
	if o, ok := demo.MatchOption(a.typeahead); ok {
		a.pickerCursor = demo.OptionIndex(o.Value)
	}
}

func (a *App) handleCalendarKey(m tea.KeyMsg) tea.Cmd {
	k := a.calKeys
	switch {
	case key.Matches(m, k.Left):
		a.calendar = a.calendar.moveDays(-1)
	case key.Matches(m, k.Right):
		a.calendar = a.calendar.moveDays(1)
	case key.Matches(m, k.Up):
		a.calendar = a.calendar.moveDays(-7)
	case key.Matches(m, k.Down):
		a.calendar = a.calendar.moveDays(7)
	case key.Matches(m, k.PrevMonth):
		a.calendar = a.calendar.moveMonths(-1)
	case key.Matches(m, k.NextMonth):
		a.calendar = a.calendar.moveMonths(1)
	case key.Matches(m, k.Choose):
		d := a.calendar.cursor
		return a.dispatch(demo.ChooseDate{Date: &d})
	case key.Matches(m, k.Cancel):
		return a.dispatch(demo.ChooseDate{})
	}
	return nil
}

// remount discards all view state as if the screen had been unmounted and
// mounted again.
func (a *App) remount() {
	a.store.Reset(a.opts.Now())
	a.pickerOpen = false
	a.typeahead = ""
	a.notices = nil
	a.focus = focusSwitch
	a.followFocus = true
	if a.ready {
		a.viewport.GotoTop()
	}
	a.status = "view remounted"
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.help.Width = width
	if !a.ready {
		a.viewport = viewport.New(width, a.viewportHeight())
		a.ready = true
		return
	}
	a.viewport.Width = width
	a.viewport.Height = a.viewportHeight()
}

func (a *App) viewportHeight() int {
	return max(1, a.height-1-lipgloss.Height(a.renderHelp()))
}

func (a *App) contentWidth() int {
	if a.width <= 0 {
		return defaultWidth
	}
	return max(20, a.width-2)
}

// sync rebuilds the scrollable content and, after focus moved, scrolls the
// focused widget into view.
func (a *App) sync() {
	content, start, end := a.renderContent()
	a.content = content
	if !a.ready {
		return
	}
	a.viewport.Height = a.viewportHeight()
	a.viewport.SetContent(content)
	if !a.followFocus {
		return
	}
	a.followFocus = false
	if end > a.viewport.YOffset+a.viewport.Height {
		a.viewport.SetYOffset(end - a.viewport.Height)
	}
	if start < a.viewport.YOffset {
		a.viewport.SetYOffset(start)
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// renderContent returns the list (header panel, rows, footer text) and the
// line span of the focused widget.
func (a *App) renderContent() (string, int, int) {
	st := a.store.State()
	width := a.contentWidth()

	var blocks []string
	lines, focusStart, focusEnd := 0, 0, 0
	add := func(block string, target focusTarget) {
		h := lipgloss.Height(block)
		if target == a.focus {
			focusStart, focusEnd = lines, lines+h
		}
		blocks = append(blocks, block)
		lines += h
	}
	const none focusTarget = -1

	add(titleStyle.Render("Widget demo"), none)
	add("", none)
	add(a.widgetLine(focusSwitch, "Switch", renderSwitch(st.ToggleEnabled)), focusSwitch)
	add(a.widgetLine(focusPress, "Button", buttonStyle.Render(pressLabel)), focusPress)
	add(a.widgetLine(none, "Spinner", a.spinner.View()+" loading"), none)
	add(a.widgetLine(focusPicker, "Picker", a.renderPicker(st)), focusPicker)

	dateLine := a.widgetLine(focusDate, "Date", buttonStyle.Render(dateButtonLabel)+"  "+st.SelectedDate.Format(a.opts.DateFormat))
	if st.DatePickerVisible {
		dateLine = lipgloss.JoinVertical(lipgloss.Left, dateLine, indent(a.calendar.View(a.opts.Now().In(a.opts.Location))))
	}
	add(dateLine, focusDate)

	add(a.widgetLine(none, "Progress", a.progress.ViewAs(float64(st.ProgressPercent)/100)+fmt.Sprintf(" %3d%%", st.ProgressPercent)), none)
	add(a.widgetLine(focusSimulate, "", a.renderSimulate(st)), focusSimulate)
	add("", none)

	for _, row := range demo.Rows() {
		add(rowStyle.Width(width).Render(row), none)
	}
	add("", none)

	textStyle := lipgloss.NewStyle().Width(width)
	for _, topic := range demo.Topics() {
		add(paragraphStyle.Render(textStyle.Render(subheadingStyle.Render(topic.Name+": ")+topic.Description)), none)
	}

	return strings.Join(blocks, "\n"), focusStart, focusEnd
}

func (a *App) widgetLine(target focusTarget, label, widget string) string {
	marker := "  "
	if target == a.focus && !a.pickerOpen {
		marker = focusMarkStyle.Render("▶ ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, labelStyle.Render(label), widget)
}

func renderSwitch(on bool) string {
	if on {
		return trackOnStyle.Render("   ") + thumbOnStyle.Background(colorTrackOn).Render("●") + " on"
	}
	return thumbOffStyle.Background(colorTrackOff).Render("●") + trackOffStyle.Render("   ") + " off"
}

func (a *App) renderPicker(st demo.State) string {
	current, _ := demo.OptionByValue(st.SelectedOption)
	if !a.pickerOpen {
		return pickerStyle.Render(current.Label + " ▾")
	}
	var b strings.Builder
	for i, o := range demo.Options() {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == a.pickerCursor {
			b.WriteString(pickerCursorStyle.Render("› " + o.Label))
			continue
		}
		b.WriteString("  " + o.Label)
	}
	if a.typeahead != "" {
		b.WriteString("\n" + statusStyle.Render("find: "+a.typeahead))
	}
	return pickerStyle.Render(b.String())
}

func (a *App) renderSimulate(st demo.State) string {
	switch {
	case st.ProgressPending:
		return disabledButtonStyle.Render(simulateLabel) + statusStyle.Render("  working…")
	case !st.CanSimulate():
		return disabledButtonStyle.Render(simulateLabel) + statusStyle.Render("  done")
	default:
		return buttonStyle.Render(simulateLabel)
	}
}

func (a *App) renderStatus() string {
	text := a.status
	if text == "" {
		st := a.store.State()
		toggle := "off"
		if st.ToggleEnabled {
			toggle = "on"
		}
		text = fmt.Sprintf("switch %s · picker %s · date %s · progress %d%%",
			toggle, st.SelectedOption, st.SelectedDate.Format(a.opts.DateFormat), st.ProgressPercent)
	}
	return statusStyle.Render(text)
}

func (a *App) renderHelp() string {
	if a.store.State().DatePickerVisible {
		return a.help.View(a.calKeys)
	}
	return a.help.View(a.keys)
}

func (a *App) renderNotice(n notice) string {
	body := titleStyle.Render(n.title)
	if n.message != "" {
		body += "\n\n" + n.message
	}
	body += "\n\n" + modalHintStyle.Render(noticeDismissKey)
	return modalStyle.Render(body)
}

func indent(s string) string {
	return lipgloss.NewStyle().PaddingLeft(12).Render(s)
}
