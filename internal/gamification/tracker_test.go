package gamification

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_AwardXPAndLog(t *testing.T) {
	tr := NewTracker()

	tr.AwardXP(20, "creating a quest")
	tr.AwardXP(5, "drawing a map point")

	assert.Equal(t, 25, tr.XP())
	assert.Equal(t, []string{
		"+20 XP for creating a quest",
		"+5 XP for drawing a map point",
	}, tr.Achievements())
}

func TestTracker_LevelProgression(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, "Apprentice", tr.CurrentLevel())

	tr.AwardXP(50, "many quests")
	assert.Equal(t, "Parchment Master", tr.CurrentLevel())

	tr.AwardXP(49, "more quests")
	assert.Equal(t, "Parchment Master", tr.CurrentLevel(), "99 XP is still below the last threshold")

	tr.AwardXP(1, "one more")
	assert.Equal(t, "Archmage of Documents", tr.CurrentLevel())
}

func TestTracker_AchievementsReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.AwardXP(10, "setup")

	got := tr.Achievements()
	got[0] = "tampered"

	assert.Equal(t, []string{"+10 XP for setup"}, tr.Achievements())
}

func TestTracker_ConcurrentAwards(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.AwardXP(2, "parallel work")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, tr.XP())
	assert.Len(t, tr.Achievements(), 50)
}
