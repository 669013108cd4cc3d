package quotes

import (
	"time"

	"github.com/julianstephens/habitdash/internal/utils"
)

// Quote is one motivational quote with attribution.
type Quote struct {
	Text   string
	Author string
}

var catalog = []Quote{
	{"The journey of a thousand miles begins with a single step.", "Lao Tzu"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"What you do every day matters more than what you do once in a while.", "Gretchen Rubin"},
	{"Habits are the compound interest of self-improvement.", "James Clear"},
	{"Small changes can make a big difference in the long run.", "BJ Fogg"},
	{"Your habits shape your identity, and your identity shapes your habits.", "James Clear"},
	{"Success is the product of daily habits, not once-in-a-lifetime transformations.", "James Clear"},
	{"Every action you take is a vote for the type of person you wish to become.", "James Clear"},
	{"The quality of your life depends on the quality of your habits.", "Brian Tracy"},
	{"You do not rise to the level of your goals. You fall to the level of your systems.", "James Clear"},
	{"Good habits are worth being fanatical about.", "John Irving"},
	{"Motivation is what gets you started. Habit is what keeps you going.", "Jim Ryun"},
	{"Your net worth to the world is usually determined by what remains after your bad habits are subtracted from your good ones.", "Benjamin Franklin"},
}

// OfDay picks the quote for the calendar day of asOf. The pick is
// deterministic per date key, so the quote stays stable all day and rotates
// at midnight.
func OfDay(asOf time.Time) Quote {
	key := utils.DateKey(asOf)
	sum := 0
	for _, c := range key {
		sum += int(c)
	}
	return catalog[sum%len(catalog)]
}

// All returns the full quote catalog.
func All() []Quote {
	out := make([]Quote, len(catalog))
	copy(out, catalog)
	return out
}
