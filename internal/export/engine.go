// Package export renders quest sheets through templates and writes them as
// local artifacts. A built-in "royal decree" HTML template is always
// available; users can point TemplatesDir at their own template files.
package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/questmaster/internal/filex"
	"github.com/dmitrijs2005/questmaster/internal/logging"
	"github.com/dmitrijs2005/questmaster/internal/models"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// defaultSheetTemplate renders a quest as a standalone HTML page. The QR
// data URI is optional; the share code is embedded when present.
const defaultSheetTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Quest.Title}}</title></head>
<body>
<h1>Royal Decree: {{.Quest.Title}}</h1>
<p><b>Difficulty:</b> {{.Quest.Difficulty}}</p>
<p><b>Reward:</b> {{.Quest.Reward}} gold</p>
{{if .Quest.Deadline}}<p><b>Complete by:</b> {{.Quest.Deadline}}</p>{{end}}
<p>{{.Quest.Description}}</p>
{{if .Locations}}
<h2>Map points</h2>
<ol>
{{range .Locations}}<li>{{.Type}}{{if .Label}} — {{.Label}}{{end}} ({{printf "%.1f" .X}}, {{printf "%.1f" .Y}})</li>
{{end}}</ol>
{{end}}
{{if .QRDataURI}}<img src="{{.QRDataURI}}" alt="share code">{{end}}
<p><small>Issued {{.Now}}</small></p>
</body>
</html>
`

// SheetData is the template context for a quest sheet.
type SheetData struct {
	Quest     *models.Quest
	Locations []models.QuestLocation
	Now       string
	QRDataURI template.URL
}

// Engine renders quest sheets. It holds no open resources; one instance can
// serve the whole application.
type Engine struct {
	templatesDir string
	exportDir    string
	logger       logging.Logger
}

func NewEngine(templatesDir, exportDir string, logger logging.Logger) *Engine {
	return &Engine{templatesDir: templatesDir, exportDir: exportDir, logger: logger}
}

// RenderString renders a template given as a string with the supplied data.
func (e *Engine) RenderString(tmpl string, data any) (string, error) {
	t, err := template.New("sheet").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return sb.String(), nil
}

// RenderFile renders a template file from the configured templates
// directory. The name must be a bare file name, not a path.
func (e *Engine) RenderFile(name string, data any) (string, error) {
	if e.templatesDir == "" {
		return "", fmt.Errorf("no templates directory configured")
	}
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid template name %q", name)
	}
	raw, err := os.ReadFile(filepath.Join(e.templatesDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return e.RenderString(string(raw), data)
}

// QRPNG encodes data as a QR code PNG.
func QRPNG(data string) ([]byte, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}

// ShareCode is the string encoded into a quest's QR code.
func ShareCode(q *models.Quest) string {
	return fmt.Sprintf("questmaster://quest/%d/%s", q.ID, q.Title)
}

// ExportHTML renders the quest sheet (built-in template, or templateName
// from the templates directory when non-empty), embeds the share QR code
// and writes the artifact into the export directory. Returns the written
// file path.
func (e *Engine) ExportHTML(ctx context.Context, quest *models.Quest, locations []models.QuestLocation, templateName string) (string, error) {
	png, err := QRPNG(ShareCode(quest))
	if err != nil {
		return "", err
	}

	data := SheetData{
		Quest:     quest,
		Locations: locations,
		Now:       time.Now().Format(time.RFC3339),
		QRDataURI: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}

	var html string
	if templateName != "" {
		html, err = e.RenderFile(templateName, data)
	} else {
		html, err = e.RenderString(defaultSheetTemplate, data)
	}
	if err != nil {
		return "", err
	}

	if err := filex.EnsureDir(e.exportDir); err != nil {
		return "", err
	}
	path := filepath.Join(e.exportDir, fmt.Sprintf("quest_%d_%s.html", quest.ID, uuid.NewString()))
	if err := os.WriteFile(path, []byte(html), 0o660); err != nil {
		return "", fmt.Errorf("failed to write quest sheet: %w", err)
	}

	e.logger.Info(ctx, "quest sheet exported", "quest_id", quest.ID, "path", path)
	return path, nil
}
