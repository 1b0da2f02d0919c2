package cli

import (
	"context"
	"fmt"
)

// List prints all quests, newest first.
func (a *App) List(ctx context.Context) error {
	quests, err := a.quests.List(ctx)
	if err != nil {
		return err
	}
	if len(quests) == 0 {
		fmt.Fprintln(a.out, "No quests yet")
		return nil
	}
	for _, q := range quests {
		deadline := q.Deadline
		if deadline == "" {
			deadline = "-"
		}
		fmt.Fprintf(a.out, "#%d\t%s\t%s\t%d gold\tdue %s\n", q.ID, q.Title, q.Difficulty, q.Reward, deadline)
	}
	return nil
}

// Show prints one quest with its map points.
func (a *App) Show(ctx context.Context) error {
	id, err := GetQuestID(a.reader, a.out)
	if err != nil {
		return err
	}

	q, err := a.quests.Get(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		fmt.Fprintf(a.out, "Quest #%d not found\n", id)
		return nil
	}

	fmt.Fprintf(a.out, "#%d %s\n", q.ID, q.Title)
	fmt.Fprintf(a.out, "Difficulty: %s\n", q.Difficulty)
	fmt.Fprintf(a.out, "Reward: %d gold\n", q.Reward)
	if q.Deadline != "" {
		fmt.Fprintf(a.out, "Deadline: %s\n", q.Deadline)
	}
	if q.Description != "" {
		fmt.Fprintln(a.out, q.Description)
	}

	locations, err := a.quests.Locations(ctx, id)
	if err != nil {
		return err
	}
	for _, loc := range locations {
		label := loc.Label
		if label == "" {
			label = "(unlabeled)"
		}
		fmt.Fprintf(a.out, "  %s %s at (%.1f, %.1f)\n", loc.Type, label, loc.X, loc.Y)
	}
	return nil
}
