package reporting

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/vfg2006/media-trends-api/internal/domain"
	"github.com/vfg2006/media-trends-api/pkg/utils"
)

// RenderHTML serializa o relatório como um documento HTML autocontido
// (CSS embutido, sem dependências externas)
func (s *Service) RenderHTML(report *domain.Report) (string, error) {
	var out strings.Builder

	data := htmlData{
		Report:        report,
		CommonTitles:  utils.FormatInt(&report.Summary.CommonTitles),
		NewTitles:     utils.FormatInt(&report.Summary.NewTitles),
		RemovedTitles: utils.FormatInt(&report.Summary.RemovedTitles),
		GeneratedAt:   report.Summary.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
	}

	if err := reportTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("erro ao renderizar o relatório HTML: %w", err)
	}

	return out.String(), nil
}

type htmlData struct {
	Report        *domain.Report
	CommonTitles  string
	NewTitles     string
	RemovedTitles string
	GeneratedAt   string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Media catalog diff: {{.Report.OldLabel}} → {{.Report.NewLabel}}</title>
  <style>` + reportCSS + `</style>
</head>
<body>
  <div class="container">
    <header class="card">
      <h1>Media catalog diff: {{.Report.OldLabel}} → {{.Report.NewLabel}}</h1>
      <p class="meta">Old: {{.Report.OldLabel}}<br/>New: {{.Report.NewLabel}}</p>
    </header>
    <section class="card">
      <div class="summary">
        <div class="kpi"><div class="label">Common titles</div><div class="value">{{.CommonTitles}}</div></div>
        <div class="kpi"><div class="label">New titles</div><div class="value">{{.NewTitles}}</div></div>
        <div class="kpi"><div class="label">Removed titles</div><div class="value">{{.RemovedTitles}}</div></div>
        <div class="kpi"><div class="label">Report generated</div><div class="value">{{.GeneratedAt}}</div></div>
      </div>
    </section>
    {{range .Report.Sections}}
    <section class="card">
      <h2>{{.Title}}</h2>
      <p class="muted">{{.Description}}</p>
      <div class="table-wrap">
        <table>
          <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
          <tbody>
            {{if .Rows}}{{range .Rows}}<tr>{{range .}}{{if .URL}}<td><a href="{{.URL}}" target="_blank" rel="noreferrer">{{.Text}}</a></td>{{else}}<td>{{.Text}}</td>{{end}}{{end}}</tr>
            {{end}}{{else}}<tr><td colspan="{{len .Columns}}" class="muted">No rows</td></tr>{{end}}
          </tbody>
        </table>
      </div>
    </section>
    {{end}}
    <div class="footer">
      Tip: percent vote changes are filtered by <code>MIN_OLD_VOTES_FOR_PERCENT</code> to reduce noise.
    </div>
  </div>
</body>
</html>
`))

const reportCSS = `
:root {
  --bg: #0b1020;
  --card: #121a33;
  --text: #e8ecff;
  --muted: #aab3d8;
  --border: #243055;
  --accent: #7aa2ff;
}
html, body { height: 100%; }
body {
  margin: 0;
  font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Arial, "Apple Color Emoji", "Segoe UI Emoji";
  background: radial-gradient(1200px 700px at 10% 10%, #15204a 0%, var(--bg) 55%);
  color: var(--text);
}
.container { max-width: 1200px; margin: 0 auto; padding: 24px; }
header h1 { margin: 0 0 8px 0; font-size: 26px; }
header .meta { color: var(--muted); margin: 0; }
.card {
  background: color-mix(in srgb, var(--card) 94%, black);
  border: 1px solid var(--border);
  border-radius: 12px;
  padding: 16px;
  margin: 16px 0;
  box-shadow: 0 10px 30px rgba(0,0,0,.25);
}
.card h2 { margin: 0 0 6px 0; font-size: 18px; }
.muted { color: var(--muted); }
.summary { display: grid; grid-template-columns: repeat(4, minmax(0, 1fr)); gap: 12px; }
.kpi { background: rgba(255,255,255,.03); border: 1px solid var(--border); border-radius: 10px; padding: 12px; }
.kpi .label { color: var(--muted); font-size: 12px; }
.kpi .value { font-size: 18px; margin-top: 4px; }
.table-wrap { overflow-x: auto; }
table { width: 100%; border-collapse: collapse; font-size: 12.5px; }
th, td { padding: 8px 10px; border-bottom: 1px solid var(--border); vertical-align: top; }
th { text-align: left; color: var(--muted); font-weight: 600; position: sticky; top: 0; background: rgba(18,26,51,.95); backdrop-filter: blur(6px); }
tr:hover td { background: rgba(255,255,255,.03); }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
.footer { color: var(--muted); margin-top: 20px; font-size: 12px; }
@media (max-width: 900px) {
  .summary { grid-template-columns: repeat(2, minmax(0, 1fr)); }
}
`
