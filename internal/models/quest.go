// Package models defines the persisted record types of QuestMaster: quests,
// their immutable version snapshots, and map location annotations.
package models

import "time"

// Difficulty classifies how hard a quest is. The set is fixed and enforced
// both here and by a CHECK constraint in the database.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyEpic   Difficulty = "Epic"
)

// Valid reports whether d is one of the four known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEpic:
		return true
	}
	return false
}

// LocationType classifies a point placed on a quest map.
type LocationType string

const (
	LocationSettlement LocationType = "settlement"
	LocationLair       LocationType = "lair"
	LocationTavern     LocationType = "tavern"
)

// Valid reports whether lt is one of the known location types.
func (lt LocationType) Valid() bool {
	switch lt {
	case LocationSettlement, LocationLair, LocationTavern:
		return true
	}
	return false
}

// AllowedQuestFields is the set of column names UpdateQuest accepts.
// Field names outside this set are silently ignored.
var AllowedQuestFields = map[string]struct{}{
	"title":       {},
	"difficulty":  {},
	"reward":      {},
	"description": {},
	"deadline":    {},
}

// Quest is the primary record: a task with a title, difficulty, reward and
// an optional deadline. Quests are never physically deleted.
type Quest struct {
	// ID is assigned by the database on insert and never changes.
	ID int64

	// Title is unique across all quests.
	Title string

	// Difficulty is one of the Difficulty constants.
	Difficulty Difficulty

	// Reward is the quest's reward value. The store enforces no range.
	Reward int

	// Description is free text.
	Description string

	// Deadline is an optional RFC 3339 date string; empty when unset.
	// Stored as text so lexical order matches chronological order.
	Deadline string

	// CreatedAt is assigned at insert time and never updated.
	CreatedAt time.Time
}

// QuestVersion is an immutable snapshot of a quest's mutable fields taken
// after every creation and every update. Versions accumulate without bound.
type QuestVersion struct {
	ID          int64
	QuestID     int64
	Title       string
	Difficulty  Difficulty
	Reward      int
	Description string

	// CreatedAt is the snapshot time in UTC, assigned by the store.
	CreatedAt time.Time
}

// QuestLocation is a single labeled point on a quest's map. Locations are
// ordered by insertion (ascending ID) and removed last-in-first-out.
type QuestLocation struct {
	ID      int64
	QuestID int64
	X       float64
	Y       float64
	Type    LocationType

	// Label is optional display text; empty when unset.
	Label string
}
