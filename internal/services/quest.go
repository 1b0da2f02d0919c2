// Package services ties the quest store, the gamification tracker and the
// export engine together behind the interfaces the CLI consumes.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/questmaster/internal/gamification"
	"github.com/dmitrijs2005/questmaster/internal/models"
	"github.com/dmitrijs2005/questmaster/internal/store"
)

// XP awards mirror the desktop app's values.
const (
	xpCreateQuest = 3
	xpExportSheet = 2
	xpSaveMap     = 5
)

// Defaults applied when the caller leaves a field blank.
const (
	DefaultDifficulty = models.DifficultyEasy
	DefaultReward     = 10
)

// Exporter renders a quest sheet artifact. Implemented by export.Engine.
type Exporter interface {
	ExportHTML(ctx context.Context, quest *models.Quest, locations []models.QuestLocation, templateName string) (string, error)
}

// QuestService is the application-level contract the CLI works against.
type QuestService interface {
	Create(ctx context.Context, title string, difficulty models.Difficulty, reward int, description, deadline string) (int64, error)
	Update(ctx context.Context, questID int64, fields map[string]any) error
	Autosave(ctx context.Context, questID int64, field string, value any) error
	Get(ctx context.Context, questID int64) (*models.Quest, error)
	FindByTitle(ctx context.Context, title string) (*models.Quest, error)
	List(ctx context.Context) ([]models.Quest, error)
	History(ctx context.Context, questID int64) ([]models.QuestVersion, error)

	AddLocation(ctx context.Context, questID int64, x, y float64, typ models.LocationType, label string) error
	UndoLocation(ctx context.Context, questID int64) error
	Locations(ctx context.Context, questID int64) ([]models.QuestLocation, error)
	FinishMap(ctx context.Context, questID int64)

	ExportSheet(ctx context.Context, questID int64, templateName string) (string, error)

	Stats() (xp int, level string, achievements []string)
}

type questService struct {
	store    *store.Store
	tracker  *gamification.Tracker
	exporter Exporter
}

func NewQuestService(st *store.Store, tracker *gamification.Tracker, exporter Exporter) QuestService {
	return &questService{store: st, tracker: tracker, exporter: exporter}
}

func (s *questService) Create(ctx context.Context, title string, difficulty models.Difficulty, reward int, description, deadline string) (int64, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	id, err := s.store.CreateQuest(ctx, title, difficulty, reward, description, deadline)
	if err != nil {
		return 0, err
	}
	s.tracker.AwardXP(xpCreateQuest, "creating a quest")
	return id, nil
}

func (s *questService) Update(ctx context.Context, questID int64, fields map[string]any) error {
	return s.store.UpdateQuest(ctx, questID, fields)
}

func (s *questService) Autosave(ctx context.Context, questID int64, field string, value any) error {
	return s.store.AutosaveField(ctx, questID, field, value)
}

func (s *questService) Get(ctx context.Context, questID int64) (*models.Quest, error) {
	return s.store.GetQuest(ctx, questID)
}

func (s *questService) FindByTitle(ctx context.Context, title string) (*models.Quest, error) {
	return s.store.FindByTitle(ctx, title)
}

func (s *questService) List(ctx context.Context) ([]models.Quest, error) {
	return s.store.GetAllQuests(ctx)
}

func (s *questService) History(ctx context.Context, questID int64) ([]models.QuestVersion, error) {
	return s.store.GetVersions(ctx, questID)
}

func (s *questService) AddLocation(ctx context.Context, questID int64, x, y float64, typ models.LocationType, label string) error {
	return s.store.AddLocation(ctx, questID, x, y, typ, label)
}

func (s *questService) UndoLocation(ctx context.Context, questID int64) error {
	return s.store.DeleteLastLocation(ctx, questID)
}

func (s *questService) Locations(ctx context.Context, questID int64) ([]models.QuestLocation, error) {
	return s.store.GetLocations(ctx, questID)
}

// FinishMap records the "map saved" award when the user leaves the map
// editor. Locations themselves are persisted point by point.
func (s *questService) FinishMap(ctx context.Context, questID int64) {
	s.tracker.AwardXP(xpSaveMap, "saving a map")
}

func (s *questService) ExportSheet(ctx context.Context, questID int64, templateName string) (string, error) {
	quest, err := s.store.GetQuest(ctx, questID)
	if err != nil {
		return "", err
	}
	if quest == nil {
		return "", fmt.Errorf("quest %d does not exist", questID)
	}
	locations, err := s.store.GetLocations(ctx, questID)
	if err != nil {
		return "", err
	}

	path, err := s.exporter.ExportHTML(ctx, quest, locations, templateName)
	if err != nil {
		return "", err
	}
	s.tracker.AwardXP(xpExportSheet, "exporting a quest sheet")
	return path, nil
}

func (s *questService) Stats() (int, string, []string) {
	return s.tracker.XP(), s.tracker.CurrentLevel(), s.tracker.Achievements()
}
