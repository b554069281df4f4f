package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iafilius/GrainEye/src/grain"
)

type summaryStyles struct {
	title lipgloss.Style
	head  lipgloss.Style
	cell  lipgloss.Style
	bar   lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
}

var defaultSummaryStyles = summaryStyles{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).MarginBottom(1),
	head:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
	cell:  lipgloss.NewStyle().Width(10).Align(lipgloss.Right),
	bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	key:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16),
	value: lipgloss.NewStyle().Bold(true),
}

const barCells = 25

// NewSummaryCmd returns the summary command.
func NewSummaryCmd(root *RootArgs) *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print bins, cumulative percentages and summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dataset == "" {
				dataset = root.Config().Analysis.DatasetFile
			}
			ds, err := grain.ProviderFor(dataset).Dataset(cmd.Context())
			if err != nil {
				return err
			}
			out, err := renderSummary(ds, defaultSummaryStyles)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "JSON-lines dataset file")
	must(cmd.MarkFlagFilename("dataset", "jsonl"))
	return cmd
}

func renderSummary(ds grain.Dataset, st summaryStyles) (string, error) {
	cum, err := ds.Cumulative()
	if err != nil {
		return "", err
	}
	sum, err := ds.Summarize()
	if err != nil {
		return "", err
	}

	var rows []string
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		st.head.Inherit(st.cell).Render("d (mm)"),
		st.head.Inherit(st.cell).Render("count"),
		st.head.Inherit(st.cell).Render("cum %"),
		"  ",
		st.head.Render("histogram"),
	))
	maxCount := ds.MaxCount()
	for i, b := range ds {
		n := b.Count * barCells / maxCount
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			st.cell.Render(fmt.Sprintf("%.3f", b.DiameterMM)),
			st.cell.Render(fmt.Sprintf("%d", b.Count)),
			st.cell.Render(fmt.Sprintf("%.2f", cum[i])),
			"  ",
			st.bar.Render(strings.Repeat("█", n)),
		))
	}

	stats := []struct{ k, v string }{
		{"Total grains", fmt.Sprintf("%d", sum.Total)},
		{"d10", fmt.Sprintf("%.3f mm", sum.D10)},
		{"d50 (median)", fmt.Sprintf("%.3f mm", sum.D50)},
		{"d90", fmt.Sprintf("%.3f mm", sum.D90)},
		{"Mean", fmt.Sprintf("%.3f mm", sum.Mean)},
		{"Class", sum.Classification},
	}
	var lines []string
	for _, s := range stats {
		lines = append(lines, st.key.Render(s.k)+st.value.Render(s.v))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Grain size distribution"),
		strings.Join(rows, "\n"),
		"",
		strings.Join(lines, "\n"),
	), nil
}
