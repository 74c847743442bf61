package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"

	"github.com/jask/lexicon/internal/theme"
	"github.com/jask/lexicon/internal/vocab"
)

// DashboardOptions configures a Dashboard.
type DashboardOptions struct {
	Theme      theme.Theme
	Words      []vocab.Word
	Stats      vocab.Stats
	Search     bool
	Locale     string
	DailyGoal  int
	StreakGoal int
	Log        logrus.FieldLogger
}

// Dashboard is the home screen: stats, the current flashcard and the
// (optionally searchable) recent words list.
type Dashboard struct {
	theme   theme.Theme
	words   []vocab.Word
	stats   vocab.Stats
	cycler  *vocab.Cycler
	search  bool
	input   textinput.Model
	visible []vocab.Word
	keys    dashboardKeyMap
	help    help.Model
	numbers *message.Printer
	goals   struct{ daily, streak int }
	log     logrus.FieldLogger
	status  string
	width   int
}

// NewDashboard builds the dashboard. The word list is fixed for the life of
// the model and must not be empty.
func NewDashboard(opts DashboardOptions) (*Dashboard, error) {
	cycler, err := vocab.NewCycler(len(opts.Words))
	if err != nil {
		return nil, err
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Ocean
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	inp := textinput.New()
	inp.Prompt = "/ "
	inp.Placeholder = "Search words..."
	inp.CharLimit = 64
	inp.PromptStyle = opts.Theme.HelpKey()

	d := &Dashboard{
		theme:   opts.Theme,
		words:   opts.Words,
		stats:   opts.Stats,
		cycler:  cycler,
		search:  opts.Search,
		input:   inp,
		visible: opts.Words,
		keys:    newDashboardKeys(opts.Search),
		help:    newHelp(opts.Theme),
		numbers: numberPrinter(opts.Locale),
		log:     opts.Log,
	}
	d.goals.daily = opts.DailyGoal
	d.goals.streak = opts.StreakGoal
	return d, nil
}

func (d *Dashboard) Init() tea.Cmd { return nil }

// Current is the word on the flashcard.
func (d *Dashboard) Current() vocab.Word { return d.words[d.cycler.Index()] }

// Query is the active search text.
func (d *Dashboard) Query() string { return d.input.Value() }

// Visible is the filtered recent words list.
func (d *Dashboard) Visible() []vocab.Word { return d.visible }

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = m.Width
		d.help.Width = m.Width
		return d, nil
	case statusMsg:
		d.status = string(m)
		return d, nil
	case errMsg:
		d.status = "Error: " + m.Error()
		return d, nil
	case tea.KeyMsg:
		if d.input.Focused() {
			return d.updateSearch(m)
		}
		switch {
		case key.Matches(m, d.keys.Quit):
			return d, tea.Quit
		case key.Matches(m, d.keys.Next):
			d.cycler.Next()
			d.log.WithField("word", d.Current().Word).Debug("next card")
			return d, nil
		case key.Matches(m, d.keys.Search):
			return d, d.input.Focus()
		case key.Matches(m, d.keys.Clear):
			d.setQuery("")
			return d, nil
		}
	}
	return d, nil
}

func (d *Dashboard) updateSearch(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.String() == "ctrl+c":
		return d, tea.Quit
	case key.Matches(m, d.keys.ApplySearch):
		d.input.Blur()
		return d, nil
	case key.Matches(m, d.keys.Clear):
		d.input.Blur()
		d.setQuery("")
		return d, nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(m)
	d.refilter()
	return d, cmd
}

func (d *Dashboard) setQuery(q string) {
	d.input.SetValue(q)
	d.refilter()
}

func (d *Dashboard) refilter() {
	d.visible = vocab.Filter(d.words, d.input.Value())
}

func (d *Dashboard) View() string {
	sections := []string{
		d.renderHeader(),
		d.renderStats(),
		d.renderCard(),
	}
	if d.search {
		sections = append(sections, d.input.View())
	}
	sections = append(sections, d.renderRecent())
	if d.status != "" {
		sections = append(sections, d.theme.MutedText().Render(d.status))
	}
	sections = append(sections, d.theme.Footer().Render(d.help.ShortHelpView(d.keys.ShortHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (d *Dashboard) renderHeader() string {
	nav := []string{d.theme.ActiveTab().Render("Home")}
	for _, label := range []string{"Learn", "Review", "Stats"} {
		nav = append(nav, d.theme.InactiveTab().Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		d.theme.Title().Render("Lexicon"), "   ", strings.Join(nav, " "))
}

func (d *Dashboard) renderStats() string {
	s := d.stats
	cards := []string{
		d.statCard("Words known", d.numbers.Sprintf("%d", s.WordsKnown), ratio(s.WordsKnown, s.TotalWords)),
		d.statCard("Due today", d.numbers.Sprintf("%d", s.DueToday), ratio(s.DueToday, d.goals.daily)),
		d.statCard("Streak", d.numbers.Sprintf("%d days", s.Streak), ratio(s.Streak, d.goals.streak)),
		d.statCard("Progress", fmt.Sprintf("%d%%", s.ProgressPercent()), ratio(s.WordsKnown, s.TotalWords)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (d *Dashboard) statCard(label, value string, fill float64) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		d.theme.MutedText().Render(label),
		d.theme.Title().Render(value),
		gauge(d.theme.Accent, gaugeWidth, fill),
	)
	return d.theme.Card().Width(cardWidth).Render(body)
}

func (d *Dashboard) renderCard() string {
	w := d.Current()
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		d.theme.Title().Render(w.Word), "  ", d.theme.DifficultyBadge(w.Difficulty))
	pos := d.theme.MutedText().Render(fmt.Sprintf("card %d of %d", d.cycler.Index()+1, d.cycler.Len()))
	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		lipgloss.NewStyle().Foreground(d.theme.Accent).Render(w.Translation),
		w.Definition,
		pos,
	)
	return d.theme.Card().Width(cardWidth * 2).Render(body)
}

func (d *Dashboard) renderRecent() string {
	lines := []string{d.theme.Title().Render("Recent words")}
	if len(d.visible) == 0 {
		lines = append(lines, d.theme.MutedText().Render("No words match"))
		if s, ok := vocab.Suggest(d.words, d.input.Value()); ok {
			lines = append(lines, d.theme.MutedText().Render("Did you mean "+s.Word+"?"))
		}
		return strings.Join(lines, "\n")
	}
	for _, w := range d.visible {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			w.Word, d.theme.MutedText().Render(w.Translation), d.theme.DifficultyBadge(w.Difficulty)))
	}
	return strings.Join(lines, "\n")
}
