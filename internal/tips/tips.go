// Package tips provides short hints about lovetest shown under results.
package tips

import "time"

// all is the full tip pool.
var all = []string{
	"The same names will always give the same score.",
	"Order matters: `lovetest test A B` and `lovetest test B A` can differ.",
	"Case and outer spaces never change a score: \"  Romeo \" is \"romeo\".",
	"`lovetest test you crush --share` prints a line ready to paste anywhere.",
	"`lovetest test you crush --format json` for scripts and bots.",
	"`lovetest tiers` lists every message band.",
	"`lovetest config set user.name <you>` so you only type your crush.",
	"`lovetest config set display.animate false` to skip the score animation.",
	"Run `lovetest` with no arguments for the interactive screen.",
	"Scores are for fun 😄. Talk to the person, not the terminal.",
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns a deterministic tip for the given day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}
