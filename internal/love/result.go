package love

import "fmt"

// Result is a scored pair ready for display. Names are kept as typed.
type Result struct {
	Subject  string `json:"subject" yaml:"subject"`
	Target   string `json:"target" yaml:"target"`
	Score    int    `json:"score" yaml:"score"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Share    string `json:"share" yaml:"share"`
}

// Test scores the pair and attaches its message and share text.
func Test(subject, target string) (Result, error) {
	score := ComputeScore(subject, target)
	title, subtitle, err := ScoreMessage(score)
	if err != nil {
		return Result{}, fmt.Errorf("scoring %q + %q: %w", subject, target, err)
	}
	return Result{
		Subject:  subject,
		Target:   target,
		Score:    score,
		Title:    title,
		Subtitle: subtitle,
		Share:    ShareText(subject, target, score),
	}, nil
}

// ShareText formats the one-line result for pasting elsewhere.
func ShareText(subject, target string, score int) string {
	return fmt.Sprintf("Love Test: %s + %s = %d%% 💗", subject, target, score)
}
