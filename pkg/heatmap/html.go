// 19 Oct 2026
// The html page is a single file. The plot is inline svg and the
// hover read out is a few lines of script, so nothing is fetched
// when the page is opened.

package heatmap

import (
	"html/template"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/scoremat"
)

type htmlCell struct {
	X, Y, TX, TY int
	Fill, Ink    string
	Text         string
	Row, Col     string
}

type htmlTick struct {
	X, Y int
	Text string
}

type htmlStop struct {
	Offset string
	Color  string
}

type htmlPage struct {
	*Options
	Width, Height  int
	Left, Top      int
	GridW, GridH   int
	GridMidX       int
	GridMidY       int
	XTitleY        int
	BarX, BarW     int
	BarTextX       int
	CellW, CellH   int
	Cells          []htmlCell
	XTicks, YTicks []htmlTick
	CTicks         []htmlTick
	Stops          []htmlStop
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Open Sans", Verdana, Arial, sans-serif; margin: 0; background: #fff; }
svg text { font-size: 12px; fill: #444; }
svg text.cell { font-size: 11px; pointer-events: none; }
svg text.title { font-size: 17px; }
rect.cell:hover { stroke: #000; stroke-width: 1.5; }
#tip { position: absolute; display: none; padding: 4px 8px; background: #333; color: #fff;
       font-size: 12px; border-radius: 3px; pointer-events: none; white-space: pre; }
</style>
</head>
<body>
<div id="tip"></div>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<defs>
<linearGradient id="cbar" x1="0" y1="1" x2="0" y2="0">
{{- range .Stops}}
<stop offset="{{.Offset}}" stop-color="{{.Color}}"/>
{{- end}}
</linearGradient>
</defs>
<text class="title" x="{{.Left}}" y="30">{{.Title}}</text>
<g id="cells">
{{- range .Cells}}
<rect class="cell" x="{{.X}}" y="{{.Y}}" width="{{$.CellW}}" height="{{$.CellH}}" fill="{{.Fill}}" data-row="{{.Row}}" data-col="{{.Col}}" data-val="{{.Text}}"><title>x: {{.Col}}
y: {{.Row}}
energy: {{.Text}}</title></rect>
<text class="cell" x="{{.TX}}" y="{{.TY}}" text-anchor="middle" dominant-baseline="central" fill="{{.Ink}}">{{.Text}}</text>
{{- end}}
</g>
<g id="xticks">
{{- range .XTicks}}
<text x="{{.X}}" y="{{.Y}}" text-anchor="middle">{{.Text}}</text>
{{- end}}
</g>
<g id="yticks">
{{- range .YTicks}}
<text x="{{.X}}" y="{{.Y}}" text-anchor="end" dominant-baseline="central">{{.Text}}</text>
{{- end}}
</g>
<text x="{{.GridMidX}}" y="{{.XTitleY}}" text-anchor="middle">{{.XTitle}}</text>
<text x="20" y="{{.GridMidY}}" text-anchor="middle" transform="rotate(-90 20 {{.GridMidY}})">{{.YTitle}}</text>
<rect x="{{.BarX}}" y="{{.Top}}" width="{{.BarW}}" height="{{.GridH}}" fill="url(#cbar)"/>
<text x="{{.BarX}}" y="{{.Top}}" dy="-10">{{.CTitle}}</text>
<g id="cticks">
{{- range .CTicks}}
<text x="{{.X}}" y="{{.Y}}" dominant-baseline="central">{{.Text}}</text>
{{- end}}
</g>
</svg>
<script>
(function () {
  var tip = document.getElementById("tip");
  document.querySelectorAll("rect.cell").forEach(function (r) {
    r.addEventListener("mousemove", function (e) {
      tip.textContent = "x: " + r.dataset.col + "\ny: " + r.dataset.row + "\nenergy: " + r.dataset.val;
      tip.style.left = (e.pageX + 12) + "px";
      tip.style.top = (e.pageY + 12) + "px";
      tip.style.display = "block";
    });
    r.addEventListener("mouseleave", function () { tip.style.display = "none"; });
  });
})();
</script>
</body>
</html>
`))

// page collects everything the template needs.
func page(m *scoremat.Matrix, s *colorscale.Scale, opts *Options) *htmlPage {
	lo := newLayout(m)
	p := &htmlPage{
		Options:  opts.orDefault(),
		Width:    lo.width,
		Height:   lo.height,
		Left:     left,
		Top:      top,
		GridW:    lo.gridW,
		GridH:    lo.gridH,
		GridMidX: left + lo.gridW/2,
		GridMidY: top + lo.gridH/2,
		XTitleY:  top + lo.gridH + 50,
		BarX:     lo.barX,
		BarW:     barW,
		BarTextX: lo.barX + barW + 6,
		CellW:    cellW,
		CellH:    cellH,
	}
	for i, r := range m.Rows {
		for j, c := range m.Cols {
			v, ok := m.At(i, j)
			if !ok {
				continue
			}
			x, y := lo.cellXY(i, j)
			fill := s.ColorAt(float64(v))
			p.Cells = append(p.Cells, htmlCell{
				X: x, Y: y, TX: x + cellW/2, TY: y + cellH/2,
				Fill: colorscale.RGB(fill),
				Ink:  colorscale.RGB(ink(fill)),
				Text: scoremat.Label(v),
				Row:  string(r),
				Col:  c,
			})
		}
	}
	for j, c := range m.Cols {
		x, _ := lo.cellXY(0, j)
		p.XTicks = append(p.XTicks, htmlTick{X: x + cellW/2, Y: top + lo.gridH + 18, Text: c})
	}
	for i, r := range m.Rows {
		_, y := lo.cellXY(i, 0)
		p.YTicks = append(p.YTicks, htmlTick{X: left - 8, Y: y + cellH/2, Text: string(r)})
	}
	for _, t := range lo.barTicks(s) {
		p.CTicks = append(p.CTicks, htmlTick{X: p.BarTextX, Y: t.Y, Text: t.Text})
	}
	for _, st := range s.Stops {
		p.Stops = append(p.Stops, htmlStop{
			Offset: strconv.FormatFloat(st.Pos, 'f', 4, 64),
			Color:  colorscale.RGB(st.Color),
		})
	}
	return p
}

// WriteHTML writes the whole page to w.
func WriteHTML(w io.Writer, m *scoremat.Matrix, s *colorscale.Scale, opts *Options) error {
	return errors.Wrap(pageTmpl.Execute(w, page(m, s, opts)), "html heatmap")
}
