// Package cli provides the interactive QuestMaster command-line client.
//
// It wires configuration, the local quest store, the export engine and the
// gamification tracker into an interactive REPL.
//
// Key features:
//   - Create quests and edit their fields (every change is versioned)
//   - Draw quest maps point by point, with last-point undo
//   - Browse the version history of a quest
//   - Export quest sheets as HTML with an embedded share QR code
//   - Track XP, levels, and achievements for the session
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
