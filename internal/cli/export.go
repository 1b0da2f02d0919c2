package cli

import (
	"context"
	"fmt"
)

// Export renders a quest sheet into the export directory and prints the
// artifact path.
func (a *App) Export(ctx context.Context) error {
	id, err := GetQuestID(a.reader, a.out)
	if err != nil {
		return err
	}

	templateName, err := GetSimpleText(a.reader, "Template file name (empty for built-in)", a.out)
	if err != nil {
		return err
	}

	path, err := a.quests.ExportSheet(ctx, id, templateName)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exported to", path)
	return nil
}

// Stats prints the session's XP, level and achievement log.
func (a *App) Stats(ctx context.Context) error {
	xp, level, achievements := a.quests.Stats()
	fmt.Fprintf(a.out, "Level: %s (XP: %d)\n", level, xp)
	for _, ach := range achievements {
		fmt.Fprintln(a.out, " ", ach)
	}
	return nil
}
