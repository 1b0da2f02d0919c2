package cli

import (
	"context"
	"fmt"
	"time"
)

// History lists a quest's version snapshots in append order.
func (a *App) History(ctx context.Context) error {
	id, err := GetQuestID(a.reader, a.out)
	if err != nil {
		return err
	}

	versions, err := a.quests.History(ctx, id)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintf(a.out, "No history for quest #%d\n", id)
		return nil
	}

	for i, v := range versions {
		fmt.Fprintf(a.out, "v%d (%s): %s, %s, %d gold\n",
			i+1, v.CreatedAt.Format(time.RFC3339), v.Title, v.Difficulty, v.Reward)
	}
	return nil
}
