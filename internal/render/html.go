package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/cleared-dev/ynabflow/internal/flow"
	"github.com/cleared-dev/ynabflow/internal/model"
	"github.com/cleared-dev/ynabflow/internal/money"
)

const plotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var page = template.Must(template.New("sankey").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="sankey" style="width:100%;height:800px"></div>
<script>
const figure = {{.Figure}};
Plotly.newPlot("sankey", figure.data, figure.layout);
</script>
</body>
</html>
`))

type font struct {
	Size  int    `json:"size"`
	Color string `json:"color,omitempty"`
}

type annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	ShowArrow bool    `json:"showarrow"`
	Font      font    `json:"font"`
	Align     string  `json:"align"`
	BGColor   string  `json:"bgcolor,omitempty"`
}

type sankeyTrace struct {
	Type string `json:"type"`
	Node struct {
		Label []string `json:"label"`
	} `json:"node"`
	Link struct {
		Source []int     `json:"source"`
		Target []int     `json:"target"`
		Value  []float64 `json:"value"`
	} `json:"link"`
}

type layout struct {
	Title struct {
		Text string  `json:"text"`
		X    float64 `json:"x"`
		Font font    `json:"font"`
	} `json:"title"`
	Font        font         `json:"font"`
	Height      int          `json:"height"`
	Annotations []annotation `json:"annotations"`
}

type figure struct {
	Data   []sankeyTrace `json:"data"`
	Layout layout        `json:"layout"`
}

// ChartTitle returns the chart heading, e.g. "YNAB Cash Flow: January 2025 Onwards".
func ChartTitle(r Report) string {
	return fmt.Sprintf("%s: %s Onwards", r.Title, r.Stats.StartDate.Format("January 2006"))
}

// HTML writes a standalone page drawing the graph as a Plotly Sankey chart.
func HTML(w io.Writer, r Report) error {
	return page.Execute(w, struct {
		Title     string
		PlotlyURL string
		Figure    figure
	}{
		Title:     ChartTitle(r),
		PlotlyURL: plotlyURL,
		Figure:    buildFigure(r),
	})
}

func buildFigure(r Report) figure {
	trace := sankeyTrace{Type: "sankey"}
	trace.Node.Label = make([]string, 0, len(r.Graph.Nodes))
	for _, n := range r.Graph.Nodes {
		trace.Node.Label = append(trace.Node.Label, htmlLabel(n))
	}
	trace.Link.Source = make([]int, 0, len(r.Graph.Links))
	trace.Link.Target = make([]int, 0, len(r.Graph.Links))
	trace.Link.Value = make([]float64, 0, len(r.Graph.Links))
	for _, l := range r.Graph.Links {
		trace.Link.Source = append(trace.Link.Source, l.Source)
		trace.Link.Target = append(trace.Link.Target, l.Target)
		trace.Link.Value = append(trace.Link.Value, l.Amount.InexactFloat64())
	}

	var lay layout
	lay.Title.Text = ChartTitle(r)
	lay.Title.X = 0.5
	lay.Title.Font = font{Size: 18, Color: "darkblue"}
	lay.Font = font{Size: 10}
	lay.Height = 800
	lay.Annotations = annotations(r)

	return figure{Data: []sankeyTrace{trace}, Layout: lay}
}

func htmlLabel(n model.Node) string {
	if d := flow.Detail(n); d != "" {
		return n.Name + "<br>" + d
	}
	return n.Name
}

func annotations(r Report) []annotation {
	s := r.Stats
	source := r.Source
	if source == "" {
		source = "register.csv"
	}
	paper := func(text string, x, y float64, size int, color, align string) annotation {
		return annotation{
			Text: text, X: x, Y: y, XRef: "paper", YRef: "paper",
			Font: font{Size: size, Color: color}, Align: align,
		}
	}

	included := paper(fmt.Sprintf("<b>INCLUDED DATA:</b><br>"+
		"- %s transactions across %d accounts and %d spending categories<br>"+
		"- %s total inflow<br>"+
		"- %s total outflow<br>"+
		"- %s net",
		count(s.Transactions), s.UniqueAccounts, s.UniqueGroups,
		money.USD(s.TotalInflow), money.USD(s.TotalOutflow), money.USD(s.Net)),
		0.02, 1.10, 10, "darkblue", "left")

	footer := paper(fmt.Sprintf("Data: YNAB %s | Filtered by account filter | Data through: %s", source, dataThrough(s)),
		0.5, -0.05, 10, "gray", "center")

	excluded := paper(fmt.Sprintf("EXCLUDED: %s transactions (transfers, zero-amount, non-filtered accounts)", count(s.Excluded)),
		0.5, -0.08, 10, "red", "center")

	direction := paper("<b>Flow Direction:</b> Income Sources → Income Bucket → Spending Categories",
		0.5, 0.02, 11, "darkblue", "center")
	direction.BGColor = "rgba(173, 216, 230, 0.7)"

	return []annotation{included, footer, excluded, direction}
}
