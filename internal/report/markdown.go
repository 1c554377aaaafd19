// Package report writes summaries of batch conversions.
package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/open-cli-collective/spotlight-md/internal/batch"
)

// Title is the heading of the batch report.
const Title = "Spotlight Conversion Report"

// WriteMarkdown writes a markdown summary of a batch run to w.
func WriteMarkdown(w io.Writer, results []batch.Result) error {
	md := markdown.NewMarkdown(w)
	summary := batch.Summarize(results)

	md.H1(Title)
	md.PlainText("")

	writeSummary(md, summary)
	writeResults(md, results)
	writeFailures(md, results)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated %s*", time.Now().UTC().Format("2006-01-02 15:04:05 MST"))

	return md.Build()
}

func writeSummary(md *markdown.Markdown, s batch.Summary) {
	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Pages", "Count"},
		Rows: [][]string{
			{"Converted", strconv.Itoa(s.Converted)},
			{"Failed", strconv.Itoa(s.Failed)},
			{"**Total**", "**" + strconv.Itoa(s.Total) + "**"},
		},
	})
	md.PlainText("")

	if s.Converted > 0 && s.Failed > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Conversion Outcome"),
			piechart.WithShowData(true),
		)
		chart.LabelAndIntValue("Converted", uint64(s.Converted))
		chart.LabelAndIntValue("Failed", uint64(s.Failed))

		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	switch {
	case s.Total == 0:
		md.Note("No spotlight pages were found.")
	case s.Failed > 0:
		md.Warningf("%d of %d spotlight page(s) could not be converted.", s.Failed, s.Total)
	default:
		md.Tip("All spotlight pages converted.")
	}
	md.PlainText("")
}

func writeResults(md *markdown.Markdown, results []batch.Result) {
	if len(results) == 0 {
		return
	}

	md.H2("Pages")
	md.PlainText("")

	rows := make([][]string, len(results))
	for i, r := range results {
		status := "converted"
		if !r.OK() {
			status = "failed"
		}
		name := "-"
		if r.Spotlight != nil {
			name = escapeCell(r.Spotlight.Metadata.Name)
		}
		rows[i] = []string{
			"`" + r.Name() + "`",
			name,
			status,
			r.Duration.Round(time.Millisecond).String(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"File", "Name", "Status", "Duration"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeFailures(md *markdown.Markdown, results []batch.Result) {
	var failed []batch.Result
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")

	items := make([]string, len(failed))
	for i, r := range failed {
		items[i] = "`" + r.Name() + "`: " + r.Err.Error()
	}
	md.BulletList(items...)
	md.PlainText("")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
