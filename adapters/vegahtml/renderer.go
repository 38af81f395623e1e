// Package vegahtml writes a Vega-Lite chart specification to a self-contained
// interactive HTML document. The document loads the Vega runtime from a CDN
// but embeds all chart data inline, so its static content needs no network.
package vegahtml

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"healthcharts/internal"
	"healthcharts/internal/charts"
	"healthcharts/internal/errors"
)

// Options configures a render call
type Options struct {
	// MaxRows aborts the render when the spec embeds more inline rows.
	// 0 disables the limit.
	MaxRows int
}

// Renderer serializes chart specifications to HTML documents
type Renderer struct {
	opts   Options
	logger *internal.Logger
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts, logger: internal.DefaultLogger}
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
  <style>
    body { margin: 16px; font-family: sans-serif; }
    #vis.vega-embed { width: 100%; display: flex; }
  </style>
</head>
<body>
  <div id="vis"></div>
  <script type="text/javascript">
    const spec = {{.SpecJSON}};
    vegaEmbed("#vis", spec, {mode: "vega-lite"}).catch(console.error);
  </script>
</body>
</html>
`

var docTmpl = template.Must(template.New("chart").Parse(documentTemplate))

// Render writes the chart specification to the destination path. The
// document is written to a temporary file and renamed into place, so a
// failed render never leaves a partial output file behind.
func (r *Renderer) Render(spec *charts.Spec, destPath string) error {
	if r.opts.MaxRows > 0 {
		if rows := spec.RowCount(); rows > r.opts.MaxRows {
			return errors.RenderError(
				fmt.Sprintf("spec embeds %d rows, exceeding the configured limit of %d", rows, r.opts.MaxRows), nil)
		}
	}

	specJSON, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return errors.RenderError("failed to serialize chart specification", err)
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.RenderError("failed to create output directory", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".chart_*.html")
	if err != nil {
		return errors.RenderError("failed to create temporary output file", err)
	}
	tmpPath := tmpFile.Name()

	writeErr := docTmpl.Execute(tmpFile, struct{ SpecJSON template.JS }{SpecJSON: template.JS(specJSON)})
	closeErr := tmpFile.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr == nil {
			writeErr = closeErr
		}
		return errors.RenderError("failed to write chart document", writeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return errors.RenderError("failed to move chart document into place", err)
	}

	r.logger.Info("[Renderer] wrote %s (%d inline rows)", destPath, spec.RowCount())
	return nil
}
