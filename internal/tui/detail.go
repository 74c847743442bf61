package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/jask/lexicon/internal/pronounce"
	"github.com/jask/lexicon/internal/theme"
	"github.com/jask/lexicon/internal/vocab"
)

// Tab identifies a section of the word detail screen.
type Tab int

const (
	TabExamples Tab = iota
	TabSynonyms
	TabEtymology
	TabStatistics
	tabCount
)

var tabLabels = [tabCount]string{"Examples", "Synonyms", "Etymology", "Statistics"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Tab(" + strconv.Itoa(int(t)) + ")"
	}
	return tabLabels[t]
}

// Reviewer records a recall attempt and reloads the word afterwards.
type Reviewer interface {
	Review(ctx context.Context, word string, correct bool) error
	Detail(ctx context.Context, word string) (*vocab.DetailInput, error)
}

// DetailOptions configures a WordDetail. Only OnBack is required for a
// useful screen; everything else has a default.
type DetailOptions struct {
	Theme      theme.Theme
	Input      *vocab.DetailInput
	OnBack     func()
	Pronouncer pronounce.Pronouncer
	Reviewer   Reviewer
	Log        logrus.FieldLogger
}

// WordDetail shows one word with tabs for examples, synonyms, etymology and
// review statistics.
type WordDetail struct {
	ctx        context.Context
	theme      theme.Theme
	detail     vocab.Detail
	onBack     func()
	pronouncer pronounce.Pronouncer
	reviewer   Reviewer
	log        logrus.FieldLogger

	tab     Tab
	playing bool
	playSeq int
	cancel  context.CancelFunc
	spinner spinner.Model
	keys    detailKeyMap
	help    help.Model
	status  string
}

// NewWordDetail builds the detail screen. A nil Input shows the default word.
func NewWordDetail(ctx context.Context, opts DetailOptions) *WordDetail {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Dusk
	}
	if opts.Pronouncer == nil {
		opts.Pronouncer = pronounce.NewSimulated(pronounce.DefaultDelay)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(opts.Theme.Accent)
	return &WordDetail{
		ctx:        ctx,
		theme:      opts.Theme,
		detail:     vocab.Normalize(opts.Input),
		onBack:     opts.OnBack,
		pronouncer: opts.Pronouncer,
		reviewer:   opts.Reviewer,
		log:        opts.Log,
		spinner:    sp,
		keys:       newDetailKeys(opts.Reviewer != nil),
		help:       newHelp(opts.Theme),
	}
}

func (w *WordDetail) Init() tea.Cmd { return nil }

// Detail is the normalized record on screen.
func (w *WordDetail) Detail() vocab.Detail { return w.detail }

// Tab is the selected tab.
func (w *WordDetail) Tab() Tab { return w.tab }

// Playing reports whether pronunciation is in progress.
func (w *WordDetail) Playing() bool { return w.playing }

// Status is the last status line message.
func (w *WordDetail) Status() string { return w.status }

func (w *WordDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.help.Width = m.Width
		return w, nil
	case spinner.TickMsg:
		if !w.playing {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(m)
		return w, cmd
	case pronouncedMsg:
		if m.seq != w.playSeq {
			return w, nil
		}
		w.stopPlaying()
		w.status = pronounceStatus(w.detail.Word, m.outcome, m.err)
		w.log.WithFields(logrus.Fields{"word": w.detail.Word, "outcome": m.outcome.String()}).Debug("pronounce finished")
		return w, nil
	case reviewedMsg:
		w.detail = vocab.Normalize(m.input)
		if m.correct {
			w.status = "Marked as known"
		} else {
			w.status = "Marked for another look"
		}
		return w, nil
	case statusMsg:
		w.status = string(m)
		return w, nil
	case errMsg:
		w.status = "Error: " + m.Error()
		return w, nil
	case tea.KeyMsg:
		return w.handleKey(m)
	}
	return w, nil
}

func (w *WordDetail) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, w.keys.Quit):
		w.cancelPlayback()
		return w, tea.Quit
	case key.Matches(m, w.keys.Cancel):
		w.cancelPlayback()
		return w, nil
	case key.Matches(m, w.keys.Back):
		return w, w.backCmd()
	case key.Matches(m, w.keys.NextTab):
		w.tab = (w.tab + 1) % tabCount
	case key.Matches(m, w.keys.PrevTab):
		w.tab = (w.tab + tabCount - 1) % tabCount
	case key.Matches(m, w.keys.JumpTab):
		w.tab = Tab(m.String()[0] - '1')
	case key.Matches(m, w.keys.Pronounce):
		return w, w.startPlaying()
	case key.Matches(m, w.keys.Correct):
		return w, w.reviewCmd(true)
	case key.Matches(m, w.keys.Wrong):
		return w, w.reviewCmd(false)
	}
	return w, nil
}

// backCmd hands control to the caller. OnBack runs off the update loop so
// it may safely talk to the running program.
func (w *WordDetail) backCmd() tea.Cmd {
	if w.onBack == nil {
		return nil
	}
	onBack := w.onBack
	return func() tea.Msg {
		onBack()
		return nil
	}
}

func (w *WordDetail) startPlaying() tea.Cmd {
	if w.playing {
		return nil
	}
	ctx, cancel := context.WithCancel(w.ctx)
	w.playSeq++
	w.playing = true
	w.cancel = cancel
	w.status = ""
	w.keys.setPlaying(true)

	seq, word, p := w.playSeq, w.detail.Word, w.pronouncer
	play := func() tea.Msg {
		defer cancel()
		err := p.Pronounce(ctx, word)
		return pronouncedMsg{seq: seq, outcome: pronounce.OutcomeOf(err), err: err}
	}
	return tea.Batch(w.spinner.Tick, play)
}

func (w *WordDetail) cancelPlayback() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *WordDetail) stopPlaying() {
	w.playing = false
	w.cancel = nil
	w.keys.setPlaying(false)
}

func (w *WordDetail) reviewCmd(correct bool) tea.Cmd {
	if w.reviewer == nil {
		return nil
	}
	ctx, r, word := w.ctx, w.reviewer, w.detail.Word
	return func() tea.Msg {
		if err := r.Review(ctx, word, correct); err != nil {
			return errMsg{err}
		}
		in, err := r.Detail(ctx, word)
		if err != nil {
			return errMsg{err}
		}
		return reviewedMsg{correct: correct, input: in}
	}
}

func pronounceStatus(word string, o pronounce.Outcome, err error) string {
	switch o {
	case pronounce.Played:
		return "Played " + word
	case pronounce.Cancelled:
		return "Playback cancelled"
	}
	if errors.Is(err, pronounce.ErrNothingToPlay) {
		return "Nothing to play"
	}
	return fmt.Sprintf("Playback failed: %v", err)
}

func (w *WordDetail) View() string {
	sections := []string{
		w.renderMain(),
		w.renderProgress(),
		w.renderTabs(),
		w.theme.Card().Width(cardWidth * 3).Render(w.renderTabBody()),
	}
	if w.status != "" {
		sections = append(sections, w.theme.MutedText().Render(w.status))
	}
	sections = append(sections, w.theme.Footer().Render(w.help.ShortHelpView(w.keys.ShortHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (w *WordDetail) renderMain() string {
	d := w.detail
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		w.theme.Title().Render(d.Word), "  ", w.theme.DifficultyBadge(d.Difficulty))
	button := w.theme.Badge(vocab.ToneNeutral).Render("▶ Pronounce")
	if w.playing {
		button = w.spinner.View() + " Playing..."
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		lipgloss.NewStyle().Foreground(w.theme.Accent).Render(d.Translation),
		w.theme.MutedText().Render(d.Phonetic+"  ·  "+d.PartOfSpeech),
		"",
		d.Definition,
		"",
		button,
	)
	return w.theme.Card().Width(cardWidth * 3).Render(body)
}

func (w *WordDetail) renderProgress() string {
	d := w.detail
	cards := []string{
		w.progressCard("Accuracy", fmt.Sprintf("%d%%", d.Accuracy()), gauge(w.theme.Accent, gaugeWidth, float64(d.Accuracy())/100)),
		w.progressCard("Frequency", fmt.Sprintf("%d%%", d.Frequency), gauge(w.theme.Brand, gaugeWidth, float64(d.Frequency)/100)),
		w.progressCard("Next review", d.NextReview, ""),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (w *WordDetail) progressCard(label, value, bar string) string {
	rows := []string{w.theme.MutedText().Render(label), w.theme.Title().Render(value)}
	if bar != "" {
		rows = append(rows, bar)
	}
	return w.theme.Card().Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (w *WordDetail) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == w.tab {
			tabs = append(tabs, w.theme.ActiveTab().Render(label))
		} else {
			tabs = append(tabs, w.theme.InactiveTab().Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (w *WordDetail) renderTabBody() string {
	d := w.detail
	muted := w.theme.MutedText()
	switch w.tab {
	case TabSynonyms:
		return lipgloss.JoinVertical(lipgloss.Left,
			w.theme.Title().Render("Synonyms"),
			bulletList(d.Synonyms, "None recorded", muted),
			"",
			w.theme.Title().Render("Antonyms"),
			bulletList(d.Antonyms, "None recorded", muted),
		)
	case TabEtymology:
		return lipgloss.JoinVertical(lipgloss.Left, w.theme.Title().Render("Origin"), d.Etymology)
	case TabStatistics:
		return lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("Correct answers  %s", d.AnswerRatio()),
			fmt.Sprintf("Last reviewed    %s", d.LastReviewed),
			fmt.Sprintf("Next review      %s", d.NextReview),
			"",
			muted.Render("Accuracy"),
			gauge(w.theme.Accent, gaugeWidth*2, float64(d.Accuracy())/100),
			muted.Render("Frequency"),
			gauge(w.theme.Brand, gaugeWidth*2, float64(d.Frequency)/100),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			w.theme.Title().Render("Usage examples"),
			bulletList(d.Examples, "No examples yet", muted),
		)
	}
}
