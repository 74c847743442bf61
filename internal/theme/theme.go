package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/lexicon/internal/vocab"
)

// ErrUnknownTheme is returned by ByName for names not in the registry.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme is the set of colors a screen is drawn with. Screens take a Theme
// instead of hard-coding a palette, so the same component can be shown in
// either variant.
type Theme struct {
	Name    string
	Brand   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Tones   map[vocab.Tone]lipgloss.Color
}

// Ocean is the blue/green dashboard palette.
var Ocean = Theme{
	Name:    "ocean",
	Brand:   colorBlue,
	Accent:  colorGreen,
	Text:    colorText,
	Muted:   colorSubtext0,
	Surface: colorSurface0,
	Border:  colorSurface1,
	Tones: map[vocab.Tone]lipgloss.Color{
		vocab.TonePositive: colorGreen,
		vocab.ToneWarning:  colorYellow,
		vocab.ToneDanger:   colorRed,
		vocab.ToneNeutral:  colorOverlay1,
	},
}

// Dusk is the purple/pink word detail palette.
var Dusk = Theme{
	Name:    "dusk",
	Brand:   colorMauve,
	Accent:  colorPink,
	Text:    colorText,
	Muted:   colorSubtext0,
	Surface: colorSurface0,
	Border:  colorMauve,
	Tones: map[vocab.Tone]lipgloss.Color{
		vocab.TonePositive: colorTeal,
		vocab.ToneWarning:  colorPeach,
		vocab.ToneDanger:   colorMaroon,
		vocab.ToneNeutral:  colorOverlay1,
	},
}

var registry = map[string]Theme{
	Ocean.Name: Ocean,
	Dusk.Name:  Dusk,
}

// ByName looks a theme up case-insensitively.
func ByName(name string) (Theme, error) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names lists registered theme names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ToneColor returns the color for a tone, falling back to the neutral one.
func (t Theme) ToneColor(tone vocab.Tone) lipgloss.Color {
	if c, ok := t.Tones[tone]; ok {
		return c
	}
	return t.Tones[vocab.ToneNeutral]
}

// Badge is the pill style used for difficulty labels.
func (t Theme) Badge(tone vocab.Tone) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorCrust).
		Background(t.ToneColor(tone)).
		Bold(true).
		Padding(0, 1)
}

// DifficultyBadge renders d as a badge in its tone.
func (t Theme) DifficultyBadge(d vocab.Difficulty) string {
	label := string(d)
	if label == "" {
		label = "unrated"
	}
	return t.Badge(vocab.StyleFor(d)).Render(label)
}

// Title is the bold brand-colored heading style.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Brand).Bold(true)
}

// Card is the rounded container for a block of content.
func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// MutedText is the style for secondary text.
func (t Theme) MutedText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// Footer is the key hint bar style.
func (t Theme) Footer() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorSubtext0).
		Background(colorMantle).
		Padding(0, 2)
}

// HelpKey styles the key part of a footer hint.
func (t Theme) HelpKey() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

// ActiveTab and InactiveTab style tab headers.
func (t Theme) ActiveTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorCrust).
		Background(t.Brand).
		Bold(true).
		Padding(0, 1)
}

func (t Theme) InactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorOverlay1).
		Background(colorMantle).
		Padding(0, 1)
}
