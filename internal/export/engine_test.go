package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/questmaster/internal/logging"
	"github.com/dmitrijs2005/questmaster/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuest() *models.Quest {
	return &models.Quest{
		ID:          1,
		Title:       "Rescue the Miller's Cat",
		Difficulty:  models.DifficultyEasy,
		Reward:      20,
		Description: "The cat is stuck on the mill roof.",
		Deadline:    "2025-06-01T00:00:00Z",
	}
}

func TestRenderString(t *testing.T) {
	e := NewEngine("", t.TempDir(), logging.Discard())

	out, err := e.RenderString(`Title: {{.Quest.Title}}, reward {{.Quest.Reward}}`, SheetData{Quest: testQuest()})
	require.NoError(t, err)
	assert.Equal(t, "Title: Rescue the Miller&#39;s Cat, reward 20", out)
}

func TestRenderString_BadTemplate(t *testing.T) {
	e := NewEngine("", t.TempDir(), logging.Discard())

	_, err := e.RenderString(`{{.Unclosed`, nil)
	require.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "decree.html"), []byte(`<h1>{{.Quest.Title}}</h1>`), 0o660))

	e := NewEngine(dir, t.TempDir(), logging.Discard())
	out, err := e.RenderFile("decree.html", SheetData{Quest: testQuest()})
	require.NoError(t, err)
	assert.Contains(t, out, "Rescue the Miller")
}

func TestRenderFile_NoTemplatesDir(t *testing.T) {
	e := NewEngine("", t.TempDir(), logging.Discard())
	_, err := e.RenderFile("decree.html", nil)
	require.Error(t, err)
}

func TestRenderFile_RejectsPaths(t *testing.T) {
	e := NewEngine(t.TempDir(), t.TempDir(), logging.Discard())
	_, err := e.RenderFile("../decree.html", nil)
	require.Error(t, err)
}

func TestQRPNG(t *testing.T) {
	png, err := QRPNG("questmaster://quest/1/Test")
	require.NoError(t, err)
	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestExportHTML_WritesArtifact(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "exports")
	e := NewEngine("", exportDir, logging.Discard())

	locations := []models.QuestLocation{
		{ID: 1, QuestID: 1, X: 10, Y: 20, Type: models.LocationSettlement, Label: "Milltown"},
		{ID: 2, QuestID: 1, X: 30, Y: 40, Type: models.LocationLair},
	}

	path, err := e.ExportHTML(context.Background(), testQuest(), locations, "")
	require.NoError(t, err)
	assert.Equal(t, exportDir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Rescue the Miller")
	assert.Contains(t, html, "Easy")
	assert.Contains(t, html, "Milltown")
	assert.Contains(t, html, "data:image/png;base64,", "share QR must be embedded")
	assert.True(t, strings.Contains(html, "20 gold"))
}

func TestExportHTML_CustomTemplate(t *testing.T) {
	tmplDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmplDir, "plain.html"),
		[]byte(`{{.Quest.Title}} / {{.Quest.Difficulty}}`), 0o660))

	e := NewEngine(tmplDir, t.TempDir(), logging.Discard())
	path, err := e.ExportHTML(context.Background(), testQuest(), nil, "plain.html")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/ Easy")
}
