package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jask/lexicon/internal/theme"
)

const (
	gaugeWidth = 18
	cardWidth  = 24
)

// gauge renders a static bar filled to ratio (clamped to [0,1]).
func gauge(color lipgloss.Color, width int, ratio float64) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(clampRatio(ratio))
}

func clampRatio(r float64) float64 {
	switch {
	case r != r, r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

func ratio(n, of int) float64 {
	if of <= 0 {
		return 0
	}
	return float64(n) / float64(of)
}

// numberPrinter formats counts with locale digit grouping ("1,248" in en).
func numberPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func newHelp(th theme.Theme) help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = th.HelpKey()
	h.Styles.ShortDesc = th.MutedText()
	h.Styles.ShortSeparator = th.MutedText()
	return h
}

func bulletList(items []string, empty string, muted lipgloss.Style) string {
	if len(items) == 0 {
		return muted.Render(empty)
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• " + it)
	}
	return b.String()
}
