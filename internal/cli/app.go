package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/questmaster/internal/config"
	"github.com/dmitrijs2005/questmaster/internal/export"
	"github.com/dmitrijs2005/questmaster/internal/gamification"
	"github.com/dmitrijs2005/questmaster/internal/logging"
	"github.com/dmitrijs2005/questmaster/internal/services"
	"github.com/dmitrijs2005/questmaster/internal/store"
)

// App holds the wired application: the quest service over the local store,
// plus the reader/writer pair the interactive commands talk through.
type App struct {
	config *config.Config
	quests services.QuestService
	store  *store.Store
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.DatabasePath, logger)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tracker := gamification.NewTracker()
	engine := export.NewEngine(c.TemplatesDir, c.ExportDir, logger)
	qs := services.NewQuestService(st, tracker, engine)

	return &App{
		config: c,
		quests: qs,
		store:  st,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and closes the store when the user leaves.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()
	a.Root(ctx)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to QuestMaster CLI (type 'help' for commands)")
	runREPL(ctx, a, a.reader, a.out)
}
