package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"tauthy/ai"
	pb "tauthy/proto/tauthy/v1"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const previewRunes = 48

func labelColour(label string) color.Color {
	switch label {
	case ai.LabelAI:
		return color.Red
	case ai.LabelHuman:
		return color.Green
	default:
		return color.Gray
	}
}

// printPrediction writes one result the way a user reads it: verdict first, evidence after.
func printPrediction(w io.Writer, p *pb.Prediction) {
	verdict := strings.ToUpper(p.Label)
	if p.Label == ai.LabelUndecided {
		fmt.Fprintf(w, "%s  (too little text to decide)\n", labelColour(p.Label).Sprint(verdict))
	} else {
		fmt.Fprintf(w, "%s  %.2f%%\n", labelColour(p.Label).Sprint(verdict), p.Confidence)
	}
	for _, score := range p.Details {
		fmt.Fprintf(w, "  %-6s %6.2f%%\n", score.Label, score.Percent)
	}
	if len(p.Markers) > 0 {
		fmt.Fprintf(w, "  markers: %s\n", color.Yellow.Sprint(strings.Join(p.Markers, ", ")))
	}
	if p.Opinion != nil {
		fmt.Fprintf(w, "  second opinion (%s): ai %.0f%%, human %.0f%%", p.Opinion.Model, p.Opinion.Ai, p.Opinion.Human)
		if p.Opinion.Reason != "" {
			fmt.Fprintf(w, ", %s", p.Opinion.Reason)
		}
		fmt.Fprintln(w)
	}
	if p.Language != "" {
		fmt.Fprintf(w, "  language: %s\n", p.Language)
	}
	if p.Id != "" {
		fmt.Fprintf(w, "  id: %s\n", p.Id)
	}
}

func printHistory(w io.Writer, entries []*pb.Prediction) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no history yet")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Label", "AI %", "Human %", "Feedback", "Text"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")

	for _, e := range entries {
		feedback := e.Feedback
		if feedback == "" {
			feedback = "-"
		}
		table.Append([]string{
			e.Id,
			e.CreatedAt.AsTime().Local().Format(time.DateTime),
			labelColour(e.Label).Sprint(e.Label),
			fmt.Sprintf("%.2f", percentOf(e.Details, ai.LabelAI)),
			fmt.Sprintf("%.2f", percentOf(e.Details, ai.LabelHuman)),
			feedback,
			preview(e.Text),
		})
	}
	table.Render()
}

func printHealth(w io.Writer, h *pb.HealthResponse) {
	fmt.Fprintf(w, "status:     %s\n", color.Green.Sprint(h.Status))
	fmt.Fprintf(w, "model:      %s (%s)\n", h.ModelVersion, strings.Join(h.Classes, ", "))
	fmt.Fprintf(w, "uptime:     %s\n", time.Since(h.StartedAt.AsTime()).Round(time.Second))
	fmt.Fprintf(w, "predicted:  %d (errors %d, opinion failures %d)\n", h.Predictions, h.Errors, h.OpinionFailures)
	fmt.Fprintf(w, "process:    rss %d MB, cpu %.1f%%, %d goroutines\n", h.RssBytes>>20, h.CpuPercent, h.Goroutines)
}

// toScores turns a local prediction into the wire form, sorted by label like the server sends it.
func toScores(details map[string]float64) []*pb.ClassScore {
	labels := lo.Keys(details)
	slices.Sort(labels)
	return lo.Map(labels, func(label string, _ int) *pb.ClassScore {
		return &pb.ClassScore{Label: label, Percent: details[label]}
	})
}

func percentOf(scores []*pb.ClassScore, label string) float64 {
	score, ok := lo.Find(scores, func(s *pb.ClassScore) bool { return s.Label == label })
	if !ok {
		return 0
	}
	return score.Percent
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= previewRunes {
		return text
	}
	return string(r[:previewRunes-1]) + "…"
}
