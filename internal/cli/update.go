package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/questmaster/internal/common"
	"github.com/dmitrijs2005/questmaster/internal/models"
)

// promptFieldValue asks for a field name and its new value, converting the
// reward to an integer so the database keeps its numeric type.
func (a *App) promptFieldValue() (string, any, error) {
	field, err := GetSimpleText(a.reader, "Field (title, difficulty, reward, description, deadline)", a.out)
	if err != nil {
		return "", nil, err
	}
	raw, err := GetSimpleText(a.reader, "New value", a.out)
	if err != nil {
		return "", nil, err
	}

	if field == "reward" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", nil, fmt.Errorf("reward must be a number, got %q", raw)
		}
		return field, n, nil
	}
	return field, raw, nil
}

// Update changes one field of a quest and records a version snapshot.
func (a *App) Update(ctx context.Context) error {
	id, err := GetQuestID(a.reader, a.out)
	if err != nil {
		return err
	}
	field, value, err := a.promptFieldValue()
	if err != nil {
		return err
	}
	if _, ok := models.AllowedQuestFields[field]; !ok {
		fmt.Fprintf(a.out, "Unknown field %q, nothing saved\n", field)
		return nil
	}

	if err := a.quests.Update(ctx, id, map[string]any{field: value}); err != nil {
		if errors.Is(err, common.ErrDuplicateTitle) {
			fmt.Fprintln(a.out, "That title is already taken")
			return nil
		}
		if errors.Is(err, common.ErrConstraintViolation) {
			fmt.Fprintln(a.out, "Value rejected: not an allowed value for", field)
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Saved")
	return nil
}

// Autosave persists one field the way the live form editor would: unknown
// fields are dropped silently, no confirmation is printed.
func (a *App) Autosave(ctx context.Context) error {
	id, err := GetQuestID(a.reader, a.out)
	if err != nil {
		return err
	}
	field, value, err := a.promptFieldValue()
	if err != nil {
		return err
	}
	return a.quests.Autosave(ctx, id, field, value)
}
