package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/smarthire/internal/app"
	"github.com/Makepad-fr/smarthire/internal/client"
	"github.com/Makepad-fr/smarthire/internal/model"
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// Results come back as messages, in the order requests resolve.
type (
	jobsLoadedMsg    struct{ r client.Result[[]model.Job] }
	recommendDoneMsg struct{ r client.Result[model.RecommendResponse] }
	analyzeDoneMsg   struct{ r client.Result[model.AnalysisResponse] }
)

const (
	focusResume = iota
	focusSkills
	focusJobs
	focusCount
)

// jobItem adapts one <option> of the job selector to bubbles/list.Item
type jobItem struct {
	value, label string
}

func (i jobItem) Title() string       { return i.label }
func (i jobItem) Description() string { return "" }
func (i jobItem) FilterValue() string { return i.label }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(jobItem)
	th := ui.Current()
	prefix := "  "
	line := it.label
	if it.value == "" {
		line = th.Muted.Render(line)
	}
	if index == m.Index() {
		prefix = th.Accent.Render(th.SymSelected + " ")
	}
	fmt.Fprint(w, prefix+line)
}

// cmdQueue collects commands produced by click handlers during one Update.
type cmdQueue struct{ cmds []tea.Cmd }

func (q *cmdQueue) push(c tea.Cmd) { q.cmds = append(q.cmds, c) }

func (q *cmdQueue) drain() []tea.Cmd {
	out := q.cmds
	q.cmds = nil
	return out
}

// Model hosts an app.Page. Only Update mutates the page; requests run as
// commands, so the UI stays usable while they are in flight and a second
// trigger is never blocked.
type Model struct {
	ctx  context.Context
	page *app.Page

	resume textarea.Model
	skills textinput.Model
	jobs   list.Model
	spin   spinner.Model
	help   help.Model
	keys   keyMap

	focus  int
	queue  *cmdQueue
	width  int
	height int

	// requests in flight, per action
	loadingJobs, recommending, analyzing int
}

// New builds the model and binds the page's buttons to async commands.
func New(ctx context.Context, page *app.Page) Model {
	q := &cmdQueue{}
	page.Bind(app.Triggers{
		Recommend: func(*ui.Element) {
			call := page.BeginRecommend()
			q.push(func() tea.Msg { return recommendDoneMsg{call.Run(ctx)} })
		},
		Analyze: func(*ui.Element) {
			call := page.BeginAnalyze()
			q.push(func() tea.Msg { return analyzeDoneMsg{call.Run(ctx)} })
		},
	})

	ta := textarea.New()
	ta.Placeholder = "Paste your résumé here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Python, SQL, Go"
	ti.CharLimit = 500

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Target job"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = ui.Current().Title

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Current().Pending

	return Model{
		ctx:         ctx,
		page:        page,
		resume:      ta,
		skills:      ti,
		jobs:        l,
		spin:        sp,
		help:        help.New(),
		keys:        defaultKeys(),
		queue:       q,
		width:       100,
		height:      30,
		loadingJobs: 1,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, page *app.Page) error {
	p := tea.NewProgram(New(ctx, page), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) loadJobs() tea.Cmd {
	page, ctx := m.page, m.ctx
	return func() tea.Msg { return jobsLoadedMsg{page.FetchJobs(ctx)} }
}

// Init loads the job catalog once.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadJobs(), textarea.Blink, m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case jobsLoadedMsg:
		m.loadingJobs = max(0, m.loadingJobs-1)
		m.page.ApplyJobs(msg.r)
		cmd := m.syncJobList()
		return m, cmd

	case recommendDoneMsg:
		m.recommending = max(0, m.recommending-1)
		m.page.ApplyRecommend(msg.r)
		return m, nil

	case analyzeDoneMsg:
		m.analyzing = max(0, m.analyzing-1)
		m.page.ApplyAnalyze(msg.r)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Recommend):
			m.syncForm()
			m.page.Click(app.IDBtnRecommend)
			cmds := m.queue.drain()
			m.recommending += len(cmds)
			return m, tea.Batch(cmds...)
		case key.Matches(msg, m.keys.Analyze):
			m.syncForm()
			m.page.Click(app.IDBtnAnalyze)
			cmds := m.queue.drain()
			m.analyzing += len(cmds)
			return m, tea.Batch(cmds...)
		case key.Matches(msg, m.keys.Reload):
			m.loadingJobs++
			return m, m.loadJobs()
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd
		}
		cmd := m.updateFocused(msg)
		return m, cmd
	}

	// cursor blink and friends
	var c1, c2 tea.Cmd
	m.resume, c1 = m.resume.Update(msg)
	m.skills, c2 = m.skills.Update(msg)
	return m, tea.Batch(c1, c2)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusResume:
		m.resume, cmd = m.resume.Update(msg)
	case focusSkills:
		m.skills, cmd = m.skills.Update(msg)
	case focusJobs:
		m.jobs, cmd = m.jobs.Update(msg)
		m.syncSelection()
	}
	return cmd
}

func (m *Model) setFocus(f int) tea.Cmd {
	m.focus = f
	m.resume.Blur()
	m.skills.Blur()
	switch f {
	case focusResume:
		return m.resume.Focus()
	case focusSkills:
		return m.skills.Focus()
	}
	return nil
}

// syncForm copies widget state into the page before a trigger reads it.
func (m *Model) syncForm() {
	doc := m.page.Document()
	doc.SetValue(app.IDResumeText, m.resume.Value())
	doc.SetValue(app.IDSkillsInput, m.skills.Value())
	m.syncSelection()
}

func (m *Model) syncSelection() {
	if it, ok := m.jobs.SelectedItem().(jobItem); ok {
		m.page.Document().SetValue(app.IDJobSelect, it.value)
	}
}

// syncJobList rebuilds the list from the selector's options.
func (m *Model) syncJobList() tea.Cmd {
	var items []list.Item
	m.page.Document().View(func(root *ui.Element) {
		sel := root.Find(app.IDJobSelect)
		if sel == nil {
			return
		}
		for _, o := range sel.Elements() {
			v, _ := o.Attr("value")
			items = append(items, jobItem{value: v, label: o.Text()})
		}
	})
	cmd := m.jobs.SetItems(items)
	m.jobs.Select(0)
	m.layout()
	return cmd
}

func (m *Model) layout() {
	half := max(20, m.width/2-4)
	m.resume.SetWidth(half)
	m.resume.SetHeight(max(3, m.height/3))
	m.skills.Width = half - 4
	m.jobs.SetSize(half, max(4, min(len(m.jobs.Items())+2, m.height/3)))
}

func (m Model) View() string {
	th := ui.Current()
	doc := m.page.Document()

	label := func(text string, f int) string {
		if m.focus == f {
			return th.Accent.Render(text)
		}
		return th.Muted.Render(text)
	}

	buttons := doc.Render(app.IDBtnRecommend, th) + " " + doc.Render(app.IDBtnAnalyze, th)
	if n := m.loadingJobs + m.recommending + m.analyzing; n > 0 {
		buttons += " " + m.spin.View() + th.Pending.Render(fmt.Sprintf(" %d pending", n))
	}

	form := strings.Join([]string{
		label("Résumé", focusResume),
		m.resume.View(),
		label("Skills", focusSkills),
		m.skills.View(),
		label("Jobs", focusJobs),
		m.jobs.View(),
		buttons,
		doc.Render(app.IDStatusBar, th),
	}, "\n")

	results := strings.Join([]string{
		th.Title.Render("Recommendations"),
		orNone(doc.Render(app.IDRecoList, th), th),
		"",
		th.Title.Render("Résumé analysis"),
		orNone(doc.Render(app.IDAnalyzeList, th), th),
	}, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.width/2).Render(form),
		lipgloss.NewStyle().Width(m.width/2-2).Render(results),
	)
	return panelString(body + "\n" + m.help.View(m.keys))
}

func orNone(s string, th ui.Theme) string {
	if s == "" {
		return th.Muted.Render("(none)")
	}
	return s
}

// helpers for View
func panelString(inner string) string {
	th := ui.Current()
	border := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}
