// Package charts builds declarative Vega-Lite chart specifications from the
// enriched health table. Builders only describe the visualization; the
// vegahtml adapter turns a Spec into a self-contained document.
package charts

// SchemaURL is the Vega-Lite schema the specs conform to
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Spec is a declarative Vega-Lite chart specification. A spec either carries
// its own mark/encoding or composes sub-specs via Layer.
type Spec struct {
	Schema    string                 `json:"$schema,omitempty"`
	Title     *Title                 `json:"title,omitempty"`
	Width     int                    `json:"width,omitempty"`
	Height    int                    `json:"height,omitempty"`
	Data      *Data                  `json:"data,omitempty"`
	Mark      *Mark                  `json:"mark,omitempty"`
	Encoding  *Encoding              `json:"encoding,omitempty"`
	Layer     []Spec                 `json:"layer,omitempty"`
	Params    []Param                `json:"params,omitempty"`
	Transform []Transform            `json:"transform,omitempty"`
	Usermeta  map[string]interface{} `json:"usermeta,omitempty"`
}

// Title holds chart title metadata
type Title struct {
	Text             string `json:"text"`
	Subtitle         string `json:"subtitle,omitempty"`
	FontSize         int    `json:"fontSize,omitempty"`
	SubtitleFontSize int    `json:"subtitleFontSize,omitempty"`
}

// Data carries inline data values
type Data struct {
	Values []map[string]interface{} `json:"values"`
}

// Mark describes the mark type and its static styling
type Mark struct {
	Type        string  `json:"type"`
	Size        float64 `json:"size,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	Color       string  `json:"color,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Encoding binds data attributes to visual channels
type Encoding struct {
	X       *FieldDef  `json:"x,omitempty"`
	Y       *FieldDef  `json:"y,omitempty"`
	Color   *FieldDef  `json:"color,omitempty"`
	Size    *FieldDef  `json:"size,omitempty"`
	Tooltip []FieldDef `json:"tooltip,omitempty"`
}

// FieldDef binds one attribute to a channel
type FieldDef struct {
	Field  string  `json:"field"`
	Type   string  `json:"type"` // "quantitative", "nominal", "ordinal"
	Title  string  `json:"title,omitempty"`
	Format string  `json:"format,omitempty"`
	Scale  *Scale  `json:"scale,omitempty"`
	Axis   *Axis   `json:"axis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Scale configures a channel's scale
type Scale struct {
	Type   string    `json:"type,omitempty"` // "log", "sqrt", ...
	Domain []float64 `json:"domain,omitempty"`
	Range  []float64 `json:"range,omitempty"`
	Scheme string    `json:"scheme,omitempty"`
}

// Axis configures axis presentation
type Axis struct {
	Title  string `json:"title,omitempty"`
	Format string `json:"format,omitempty"`
}

// Legend configures legend presentation
type Legend struct {
	Title  string `json:"title,omitempty"`
	Format string `json:"format,omitempty"`
}

// Param is an interactive parameter (selection or scale binding)
type Param struct {
	Name   string      `json:"name"`
	Select interface{} `json:"select,omitempty"`
	Bind   interface{} `json:"bind,omitempty"`
	Value  interface{} `json:"value,omitempty"`
}

// PointSelect is a point selection over one or more fields
type PointSelect struct {
	Type   string   `json:"type"` // "point"
	Fields []string `json:"fields,omitempty"`
}

// BindRange is a range-input control binding
type BindRange struct {
	Input string  `json:"input"` // "range"
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step,omitempty"`
	Name  string  `json:"name,omitempty"`
}

// Transform is a declarative data transform
type Transform struct {
	Filter interface{} `json:"filter,omitempty"`
}

// ParamRef references a parameter from a transform filter
type ParamRef struct {
	Param string `json:"param"`
}

// panZoomParam returns the interval selection bound to the scales, which
// gives the rendered chart pan and zoom
func panZoomParam() Param {
	return Param{
		Name:   "grid",
		Select: map[string]string{"type": "interval"},
		Bind:   "scales",
	}
}

// RowCount returns the number of inline data rows across the spec and its
// layers, for renderer row-limit enforcement
func (s *Spec) RowCount() int {
	count := 0
	if s.Data != nil {
		count += len(s.Data.Values)
	}
	for i := range s.Layer {
		count += s.Layer[i].RowCount()
	}
	return count
}
