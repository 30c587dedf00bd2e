package controller

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// trailingPeriod matches a sentence-ending period that stylish output drops.
var trailingPeriod = regexp.MustCompile(`([^ ])\.$`)

type palette struct {
	path        lipgloss.Style
	err         lipgloss.Style
	warn        lipgloss.Style
	errSummary  lipgloss.Style
	warnSummary lipgloss.Style
	dim         lipgloss.Style
	success     lipgloss.Style
}

func newPalette(renderer *lipgloss.Renderer, useColor bool) palette {
	if !useColor {
		plain := renderer.NewStyle()
		return palette{
			path: plain, err: plain, warn: plain,
			errSummary: plain, warnSummary: plain,
			dim: plain, success: plain,
		}
	}

	red := renderer.NewStyle().Foreground(lipgloss.Color("1"))
	yellow := renderer.NewStyle().Foreground(lipgloss.Color("3"))

	return palette{
		path:        renderer.NewStyle().Underline(true),
		err:         red,
		warn:        yellow,
		errSummary:  red.Bold(true),
		warnSummary: yellow.Bold(true),
		dim:         renderer.NewStyle().Faint(true),
		success:     renderer.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// renderStylish renders findings the way ESLint's stylish formatter does, so
// CI problem matchers written for ESLint keep working. Files without
// messages are omitted and a clean result renders as the empty string.
func renderStylish(findings []m.LintFinding, colors palette) string {
	var (
		out                                bytes.Buffer
		errorCount, warningCount           int
		fixableErrorCount, fixableWarnings int
	)

	for _, finding := range findings {
		if len(finding.Messages) == 0 {
			continue
		}

		errorCount += finding.ErrorCount
		warningCount += finding.WarningCount
		fixableErrorCount += finding.FixableErrorCount
		fixableWarnings += finding.FixableWarningCount

		fmt.Fprintf(&out, "\n%s\n", colors.path.Render(finding.FilePath))
		out.WriteString(renderMessageTable(finding.Messages, colors))
	}

	total := errorCount + warningCount
	if total == 0 {
		return ""
	}

	summaryStyle := colors.warnSummary
	if errorCount > 0 {
		summaryStyle = colors.errSummary
	}

	summary := fmt.Sprintf("✖ %d %s (%d %s, %d %s)",
		total, plural("problem", total),
		errorCount, plural("error", errorCount),
		warningCount, plural("warning", warningCount))
	fmt.Fprintf(&out, "\n%s\n", summaryStyle.Render(summary))

	if fixableErrorCount > 0 || fixableWarnings > 0 {
		fixable := fmt.Sprintf("  %d %s and %d %s potentially fixable with the `--fix` option.",
			fixableErrorCount, plural("error", fixableErrorCount),
			fixableWarnings, plural("warning", fixableWarnings))
		fmt.Fprintf(&out, "%s\n", summaryStyle.Render(fixable))
	}

	return out.String()
}

func renderMessageTable(messages []m.LintMessage, colors palette) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, msg := range messages {
		severity := colors.warn.Render("warning")
		if msg.Fatal || msg.Severity == m.SeverityError {
			severity = colors.err.Render("error")
		}

		text := trailingPeriod.ReplaceAllString(strings.TrimSpace(msg.Message), "$1")

		table.Append([]string{
			"",
			colors.dim.Render(fmt.Sprintf("%d:%d", msg.Line, msg.Column)),
			severity,
			text,
			colors.dim.Render(msg.RuleID),
		})
	}

	table.Render()

	return buf.String()
}

func plural(word string, count int) string {
	if count == 1 {
		return word
	}

	return word + "s"
}
