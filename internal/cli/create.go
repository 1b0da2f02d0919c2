package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/questmaster/internal/common"
	"github.com/dmitrijs2005/questmaster/internal/models"
	"github.com/dmitrijs2005/questmaster/internal/services"
)

// Create walks the user through authoring a new quest. Blank answers fall
// back to the same defaults the desktop wizard used.
func (a *App) Create(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Quest title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title must not be empty")
		return nil
	}

	diffStr, err := GetSimpleText(a.reader, fmt.Sprintf("Difficulty (Easy, Medium, Hard, Epic) [%s]", services.DefaultDifficulty), a.out)
	if err != nil {
		return err
	}
	difficulty := services.DefaultDifficulty
	if diffStr != "" {
		difficulty = models.Difficulty(diffStr)
		if !difficulty.Valid() {
			fmt.Fprintf(a.out, "Unknown difficulty %q\n", diffStr)
			return nil
		}
	}

	reward, err := GetInt(a.reader, "Reward", services.DefaultReward, a.out)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	deadline, err := GetSimpleText(a.reader, "Deadline (e.g. 2025-06-01T00:00:00, empty for none)", a.out)
	if err != nil {
		return err
	}

	id, err := a.quests.Create(ctx, title, difficulty, reward, description, deadline)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateTitle) {
			fmt.Fprintf(a.out, "A quest titled %q already exists\n", title)
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Quest #%d created\n", id)
	return nil
}
