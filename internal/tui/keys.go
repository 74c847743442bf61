package tui

import "github.com/charmbracelet/bubbles/key"

type dashboardKeyMap struct {
	Next        key.Binding
	Search      key.Binding
	ApplySearch key.Binding
	Clear       key.Binding
	Quit        key.Binding
}

func newDashboardKeys(search bool) dashboardKeyMap {
	km := dashboardKeyMap{
		Next:        key.NewBinding(key.WithKeys("n", " ", "right"), key.WithHelp("n/space", "next card")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ApplySearch: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep filter")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if !search {
		km.Search.SetEnabled(false)
		km.ApplySearch.SetEnabled(false)
		km.Clear.SetEnabled(false)
	}
	return km
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Search, k.Clear, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next}, {k.Search, k.ApplySearch, k.Clear}, {k.Quit}}
}

type detailKeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	Pronounce key.Binding
	Cancel    key.Binding
	Back      key.Binding
	Correct   key.Binding
	Wrong     key.Binding
	Quit      key.Binding
}

func newDetailKeys(canReview bool) detailKeyMap {
	km := detailKeyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tab")),
		JumpTab:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
		Pronounce: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pronounce")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
		Back:      key.NewBinding(key.WithKeys("esc", "b", "backspace"), key.WithHelp("b", "back")),
		Correct:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "knew it")),
		Wrong:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "missed it")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	km.Cancel.SetEnabled(false)
	if !canReview {
		km.Correct.SetEnabled(false)
		km.Wrong.SetEnabled(false)
	}
	return km
}

// setPlaying swaps the pronounce and back hints for the cancel hint while
// audio is running.
func (k *detailKeyMap) setPlaying(playing bool) {
	k.Pronounce.SetEnabled(!playing)
	k.Back.SetEnabled(!playing)
	k.Cancel.SetEnabled(playing)
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.JumpTab, k.Pronounce, k.Cancel, k.Correct, k.Wrong, k.Back, k.Quit}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.Pronounce, k.Cancel},
		{k.Correct, k.Wrong},
		{k.Back, k.Quit},
	}
}
