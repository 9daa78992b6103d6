// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollisb/penny/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#C9A227") // Old gold
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	CoinIcon    = "🪙"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the coin icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CoinIcon + " " + title)
}

// RenderRunSummary renders an ingestion run summary for one file.
func RenderRunSummary(name string, summary model.RunSummary) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(SuccessStyle.Render(fmt.Sprintf("  inserted: %d", summary.Inserted)))
	b.WriteString("\n")
	if summary.Skipped > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("  skipped (duplicates): %d", summary.Skipped)))
	} else {
		b.WriteString(SubtleStyle.Render("  skipped (duplicates): 0"))
	}
	return b.String()
}

// RenderAccountsTable renders the registered accounts as a table.
func RenderAccountsTable(accounts []model.Account) string {
	if len(accounts) == 0 {
		return SubtleStyle.Render("no accounts registered")
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-20s %-16s %-24s %-6s", "ACCOUNT", "INSTITUTION", "NAME", "TYPE")))
	b.WriteString("\n")
	for _, a := range accounts {
		b.WriteString(TableCellStyle.Render(fmt.Sprintf("%-20s %-16s %-24s %-6s", a.ID, a.Institution, a.Name, a.Type)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
