package love

import (
	"errors"
	"fmt"
)

// ErrScoreOutOfRange is returned for a score outside [0, MaxScore].
var ErrScoreOutOfRange = errors.New("score out of range")

// Tier is one band of the score table. Min and Max are inclusive.
type Tier struct {
	Min      int    `json:"min" yaml:"min"`
	Max      int    `json:"max" yaml:"max"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// Contains reports whether score falls inside the tier.
func (t Tier) Contains(score int) bool {
	return score >= t.Min && score <= t.Max
}

// tiers partitions [0, MaxScore] in ascending order.
var tiers = []Tier{
	{0, 19, "Hmm… low vibes 😅", "Still, friendships and good energy can surprise you!"},
	{20, 39, "Not bad 👀", "Could work if you both put effort into it."},
	{40, 59, "Pretty good ✨", "You two might actually match more than you think."},
	{60, 79, "Strong match 💖", "Nice! That's a solid compatibility score."},
	{80, MaxScore, "Top tier 🔥💘", "Okay wow—this is giving soulmate energy (for fun 😄)."},
}

// Tiers returns a copy of the tier table, lowest band first.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierFor returns the tier that contains score.
func TierFor(score int) (Tier, error) {
	for _, t := range tiers {
		if t.Contains(score) {
			return t, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: %d not in [0, %d]", ErrScoreOutOfRange, score, MaxScore)
}

// ScoreMessage returns the title and subtitle for score.
func ScoreMessage(score int) (title, subtitle string, err error) {
	t, err := TierFor(score)
	if err != nil {
		return "", "", err
	}
	return t.Title, t.Subtitle, nil
}
