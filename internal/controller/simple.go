package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/maxport/maxcensus/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ScanStarted announces the pipeline and its input directory.
func (s *SimpleUI) ScanStarted(pipeline string, input m.Path) {
	s.printf("%s\n", titleStyle.Render(fmt.Sprintf("Running %s on %s", pipeline, input)))
}

// FileStarted announces the file about to be analyzed.
func (s *SimpleUI) FileStarted(path m.Path) {
	s.printf("Analyzing: %s\n", path)
}

// FileFailed reports a per-file failure. The batch keeps going.
func (s *SimpleUI) FileFailed(path m.Path, err error) {
	s.printf("%s\n", errStyle.Render(fmt.Sprintf("Error reading %s: %v", path, err)))
}

// SummaryTable prints the per-category census totals.
func (s *SimpleUI) SummaryTable(sum m.Summary) {
	s.printf("\n%s", renderSummaryTable(sum))
}

// Report prints a rendered narrative report with a styled title.
func (s *SimpleUI) Report(title, body string) {
	s.printf("\n%s\n\n%s", titleStyle.Render(title), body)
}

// Saved reports where the artifacts were written.
func (s *SimpleUI) Saved(output m.Path) {
	s.printf("\nAnalysis complete! Results saved to %s/\n", output)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(sum m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Object Types", "Instances"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalInstances := 0
	for _, count := range sum.ObjectCounts {
		totalInstances += count
	}

	for _, category := range summaryCategories() {
		bucket := sum.Bucket(category)
		instances := 0

		for _, count := range bucket {
			instances += count
		}

		table.Append([]string{
			string(category),
			fmt.Sprintf("%d", len(bucket)),
			fmt.Sprintf("%d", instances),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Types %d", sum.UniqueObjects),
		"",
		fmt.Sprintf("%d", totalInstances),
	})

	table.Render()

	return tableBuffer.String()
}

func summaryCategories() []m.Category {
	categories := []m.Category{
		m.CategoryAudioIO,
		m.CategoryMultichannel,
		m.CategoryNamespaced,
		m.CategoryRouting,
		m.CategorySpatial,
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i] < categories[j]
	})

	return categories
}
