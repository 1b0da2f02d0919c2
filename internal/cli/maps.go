package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/questmaster/internal/common"
	"github.com/dmitrijs2005/questmaster/internal/models"
)

// EditMap runs the map sub-prompt for one quest: points are persisted as
// they are added, and "undo" removes the most recent one.
func (a *App) EditMap(ctx context.Context) error {
	id, err := GetQuestID(a.reader, a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Map commands: add <x> <y> <settlement|lair|tavern> [label], undo, list, done")
	for {
		fmt.Fprint(a.out, "map> ")
		line, readErr := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				break
			}
			continue
		}

		switch parts[0] {
		case "add":
			if err := a.addMapPoint(ctx, id, parts[1:]); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}

		case "undo":
			if err := a.quests.UndoLocation(ctx, id); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}

		case "list":
			locations, err := a.quests.Locations(ctx, id)
			if err != nil {
				fmt.Fprintln(a.out, "Error:", err)
				break
			}
			for _, loc := range locations {
				fmt.Fprintf(a.out, "  %s %s at (%.1f, %.1f)\n", loc.Type, loc.Label, loc.X, loc.Y)
			}

		case "done":
			a.quests.FinishMap(ctx, id)
			fmt.Fprintln(a.out, "Map saved")
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown map command:", parts[0])
		}

		if readErr != nil {
			break
		}
	}
	return nil
}

func (a *App) addMapPoint(ctx context.Context, questID int64, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: add <x> <y> <type> [label]")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("x must be a number, got %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("y must be a number, got %q", args[1])
	}
	typ := models.LocationType(args[2])
	if !typ.Valid() {
		return fmt.Errorf("unknown location type %q", args[2])
	}
	label := strings.Join(args[3:], " ")

	if err := a.quests.AddLocation(ctx, questID, x, y, typ, label); err != nil {
		if errors.Is(err, common.ErrConstraintViolation) {
			return fmt.Errorf("location rejected: %w", err)
		}
		return err
	}
	return nil
}
