package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"healthjournal/pkg/calendar"
	"healthjournal/pkg/editor"
	"healthjournal/pkg/journal"
	"healthjournal/pkg/notify"
)

type focus int

const (
	focusCalendar focus = iota
	focusTitle
	focusMood
	focusContent
)

const layoutHeader = "Monday, January 2, 2006"

// statusLine is shared across Model copies so the editor's notifier can
// write into it from inside Update.
type statusLine struct {
	text string
}

// Model is the interactive journal: a month calendar on the left, the entry
// form for the selected day on the right.
type Model struct {
	repo *journal.Repository
	ed   *editor.Editor

	month    time.Time // first of the rendered month
	selected time.Time
	focus    focus

	title   textinput.Model
	content textarea.Model
	mood    journal.Mood

	status *statusLine

	termWidth  int
	termHeight int
}

// New builds the model and selects today.
func New(repo *journal.Repository) Model {
	status := &statusLine{}
	ed := editor.New(repo, notify.Func(func(title, message string, _ notify.Severity) {
		status.text = fmt.Sprintf("%s: %s", title, message)
	}))

	ti := textinput.New()
	ti.Placeholder = "Entry title"
	ti.CharLimit = 120
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")

	ta := textarea.New()
	ta.Placeholder = "Write about your symptoms, feelings, or health progress..."
	ta.SetWidth(46)
	ta.SetHeight(8)

	now := time.Now()
	m := Model{
		repo:     repo,
		ed:       ed,
		month:    firstOfMonth(now),
		selected: now,
		focus:    focusCalendar,
		title:    ti,
		content:  ta,
		status:   status,
	}
	m.selectDate(now)
	m.status.text = "h/l/j/k move, [/] month, t today, enter edit, d delete, q quit"
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// storeChangedMsg reports an external write to the persisted journal.
type storeChangedMsg struct{}

// selectDate drives the editor and mirrors its state into the form widgets.
func (m *Model) selectDate(date time.Time) {
	m.selected = date
	m.month = firstOfMonth(date)
	m.ed.SelectDate(date)
	m.syncForm()
}

func (m *Model) syncForm() {
	st := m.ed.State()
	m.title.SetValue(st.Title)
	m.content.SetValue(st.Content)
	m.mood = st.Mood
}

func (m *Model) submit() {
	m.ed.EditTitle(m.title.Value())
	m.ed.EditContent(m.content.Value())
	m.ed.EditMood(m.mood)
	if err := m.ed.Submit(); err != nil {
		return
	}
	m.syncForm()
	m.focusPane(focusCalendar)
}

func (m *Model) deleteCurrent() {
	if m.ed.State().Mode != editor.Edit {
		m.status.text = "No entry exists for that day."
		return
	}
	_ = m.ed.DeleteCurrent()
	m.syncForm()
}

func (m *Model) cancel() {
	m.ed.Cancel()
	m.syncForm()
	m.focusPane(focusCalendar)
	m.status.text = "Edits discarded"
}

func (m *Model) focusPane(f focus) {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusContent:
		m.content.Focus()
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case storeChangedMsg:
		m.repo.Reload()
		if m.focus == focusCalendar {
			// Not editing, safe to rebind the form to the stored values.
			m.ed.SelectDate(m.selected)
			m.syncForm()
		}
	case tea.KeyPressMsg:
		switch m.focus {
		case focusCalendar:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "left", "h":
				m.selectDate(m.selected.AddDate(0, 0, -1))
			case "right", "l":
				m.selectDate(m.selected.AddDate(0, 0, 1))
			case "up", "k":
				m.selectDate(m.selected.AddDate(0, 0, -7))
			case "down", "j":
				m.selectDate(m.selected.AddDate(0, 0, 7))
			case "[":
				m.selectDate(m.selected.AddDate(0, -1, 0))
			case "]":
				m.selectDate(m.selected.AddDate(0, 1, 0))
			case "t":
				m.selectDate(time.Now())
			case "d":
				m.deleteCurrent()
			case "enter", "tab", "i":
				m.focusPane(focusTitle)
				cmds = append(cmds, textinput.Blink)
			}
		case focusTitle:
			switch msg.String() {
			case "esc":
				m.cancel()
			case "enter", "tab":
				m.focusPane(focusMood)
			case "ctrl+s":
				m.submit()
			default:
				var cmd tea.Cmd
				m.title, cmd = m.title.Update(msg)
				cmds = append(cmds, cmd)
			}
		case focusMood:
			switch msg.String() {
			case "esc":
				m.cancel()
			case "shift+tab":
				m.focusPane(focusTitle)
				cmds = append(cmds, textinput.Blink)
			case "enter", "tab":
				m.focusPane(focusContent)
			case "ctrl+s":
				m.submit()
			case "left", "h":
				m.mood = prevMood(m.mood)
			case "right", "l", "space":
				m.mood = nextMood(m.mood)
			}
		case focusContent:
			switch msg.String() {
			case "esc":
				m.cancel()
			case "shift+tab":
				m.focusPane(focusMood)
			case "ctrl+s", "tab":
				m.submit()
			default:
				var cmd tea.Cmd
				m.content, cmd = m.content.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	default:
		if m.focus == focusTitle {
			var cmd tea.Cmd
			m.title, cmd = m.title.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.focus == focusContent {
			var cmd tea.Cmd
			m.content, cmd = m.content.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("213"))
	headerStyle      = lipgloss.NewStyle().Bold(true)
	faintStyle       = lipgloss.NewStyle().Faint(true)
	todayStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle    = lipgloss.NewStyle().Reverse(true)
	labelStyle       = lipgloss.NewStyle().Bold(true)
)

func moodStyles() map[journal.Mood]lipgloss.Style {
	return map[journal.Mood]lipgloss.Style{
		journal.Happy: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		journal.Sad:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		journal.Angry: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

// View renders the calendar and form panes side by side.
func (m Model) View() string {
	cal := m.viewCalendar()
	form := m.viewForm()

	calPane := paneStyle
	formPane := paneStyle
	if m.focus == focusCalendar {
		calPane = focusedPaneStyle
	} else {
		formPane = focusedPaneStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		calPane.Render(cal),
		" ",
		formPane.Render(form),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		faintStyle.Render(m.status.text),
	)
}

func (m Model) viewCalendar() string {
	title := headerStyle.Render(m.month.Format("January 2006"))
	days := calendar.MonthDays(m.month, m.repo.All(), time.Now(), m.selected)
	grid := calendar.Render(m.month, days, calendar.Options{
		HeaderStyle:   faintStyle,
		EmptyStyle:    lipgloss.NewStyle(),
		MoodStyles:    moodStyles(),
		TodayStyle:    todayStyle,
		SelectedStyle: selectedStyle,
		ShowHeader:    true,
	})
	return lipgloss.JoinVertical(lipgloss.Left, title, "", grid)
}

func (m Model) viewForm() string {
	st := m.ed.State()

	mode := "New Journal Entry"
	if st.Mode == editor.Edit {
		mode = "Edit Journal Entry"
	}

	var moodRow string
	for i, g := range journal.DefaultMoods() {
		label := fmt.Sprintf(" %s %s ", g.Symbol, g.Noun)
		style := faintStyle
		if journal.Mood(i) == m.mood {
			style = moodStyles()[journal.Mood(i)]
			if m.focus == focusMood {
				style = style.Reverse(true)
			}
		}
		moodRow += style.Render(label)
	}

	help := "tab next field, ctrl+s save, esc cancel"

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.selected.Format(layoutHeader)),
		faintStyle.Render(mode),
		"",
		labelStyle.Render("Title"),
		m.title.View(),
		"",
		labelStyle.Render("How are you feeling?"),
		moodRow,
		"",
		labelStyle.Render("Journal Entry"),
		m.content.View(),
		"",
		faintStyle.Render(help),
	)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

func nextMood(m journal.Mood) journal.Mood {
	return journal.Mood((int(m) + 1) % len(journal.DefaultMoods()))
}

func prevMood(m journal.Mood) journal.Mood {
	n := len(journal.DefaultMoods())
	return journal.Mood((int(m) + n - 1) % n)
}
