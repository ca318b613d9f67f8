package journal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mood is the closed set of feelings an entry can record.
type Mood int

const (
	Happy Mood = iota
	Sad
	Angry
)

// Glyph carries the presentation metadata for a mood.
type Glyph struct {
	Noun    string
	Symbol  string
	Meaning string
	Aliases []string
}

func DefaultMoods() []Glyph {
	return []Glyph{
		{
			Noun:    "happy",
			Symbol:  "☺",
			Meaning: "feeling good",
			Aliases: []string{"happy", "good", "ok"},
		}, {
			Noun:    "sad",
			Symbol:  "☹",
			Meaning: "feeling down",
			Aliases: []string{"sad", "down", "low"},
		}, {
			Noun:    "angry",
			Symbol:  "⚡",
			Meaning: "feeling frustrated",
			Aliases: []string{"angry", "frustrated", "mad"},
		},
	}
}

func (m Mood) Glyph() Glyph {
	moods := DefaultMoods()
	if int(m) < 0 || int(m) >= len(moods) {
		return moods[Happy]
	}
	return moods[m]
}

func (m Mood) String() string {
	return m.Glyph().Noun
}

// MoodForAlias resolves user input like "frustrated" to a Mood.
func MoodForAlias(alias string) (Mood, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	for i, g := range DefaultMoods() {
		for _, a := range g.Aliases {
			if a == alias {
				return Mood(i), nil
			}
		}
	}
	return Happy, fmt.Errorf("unknown mood %q", alias)
}

func (m Mood) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var noun string
	if err := json.Unmarshal(b, &noun); err != nil {
		return err
	}
	for i, g := range DefaultMoods() {
		if g.Noun == noun {
			*m = Mood(i)
			return nil
		}
	}
	return fmt.Errorf("unknown mood %q", noun)
}
