// Package gamification keeps the session's XP counter, achievement log and
// level progression. State is in-memory only and resets on restart.
package gamification

import (
	"fmt"
	"sync"
)

// Level pairs a rank name with the XP required to reach it.
type Level struct {
	Name      string
	Threshold int
}

// levels are ordered by ascending threshold.
var levels = []Level{
	{Name: "Apprentice", Threshold: 0},
	{Name: "Parchment Master", Threshold: 50},
	{Name: "Archmage of Documents", Threshold: 100},
}

// Tracker accumulates XP and records an ordered achievement log. Safe for
// concurrent use; the REPL and a background export may both award XP.
type Tracker struct {
	mu           sync.Mutex
	xp           int
	achievements []string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// AwardXP adds amount to the counter and appends an achievement line.
func (t *Tracker) AwardXP(amount int, reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.xp += amount
	t.achievements = append(t.achievements, fmt.Sprintf("+%d XP for %s", amount, reason))
}

// XP returns the current XP total.
func (t *Tracker) XP() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.xp
}

// CurrentLevel returns the name of the highest level whose threshold the
// current XP total meets.
func (t *Tracker) CurrentLevel() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(levels) - 1; i >= 0; i-- {
		if t.xp >= levels[i].Threshold {
			return levels[i].Name
		}
	}
	return levels[0].Name
}

// Achievements returns a copy of the achievement log in award order.
func (t *Tracker) Achievements() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.achievements))
	copy(out, t.achievements)
	return out
}
