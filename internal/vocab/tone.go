package vocab

// Tone is the semantic style a difficulty badge is drawn with.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneWarning
	ToneDanger
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneWarning:
		return "warning"
	case ToneDanger:
		return "danger"
	default:
		return "neutral"
	}
}

// StyleFor maps a difficulty to its badge tone. Every input resolves to
// exactly one tone; anything other than the three known levels is neutral.
func StyleFor(d Difficulty) Tone {
	switch d {
	case Easy:
		return TonePositive
	case Medium:
		return ToneWarning
	case Hard:
		return ToneDanger
	default:
		return ToneNeutral
	}
}
