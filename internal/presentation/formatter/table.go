package formatter

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Date", "Usage", "Percent"},
	}
}

func (f *TableFormatter) Format(report Report) error {
	printed := false
	if len(report.Trend) > 0 {
		f.printTrend(report.Trend)
		printed = true
	}

	if report.Metrics != nil {
		if printed {
			fmt.Println()
		}
		printMetrics(*report.Metrics)
		printed = true
	}
	if report.Snapshot != nil {
		if printed {
			fmt.Println()
		}
		printSnapshot(*report.Snapshot)
		printed = true
	}
	if report.Alerts != nil {
		if printed {
			fmt.Println()
		}
		printAlerts(report.Alerts)
		printed = true
	}
	if !printed {
		fmt.Println("No usage data")
	}
	return nil
}

func (f *TableFormatter) printTrend(trend []model.DailyUsage) {
	rows := make([][]string, 0, len(trend)+1)
	var totalMinutes int
	for _, day := range trend {
		rows = append(rows, []string{
			day.Label,
			util.FormatMinutes(day.Minutes),
			util.FormatPercent(day.Percent),
		})
		totalMinutes += day.Minutes
	}
	totalRow := []string{"Total", util.FormatMinutes(totalMinutes), ""}

	widths := f.calculateColumnWidths(rows, totalRow)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "middle")
	f.printRow(totalRow, widths)
	f.printBorder(widths, "bottom")
}

// calculateColumnWidths sizes each column to its widest cell, starting from
// the header widths.
func (f *TableFormatter) calculateColumnWidths(rows [][]string, totalRow []string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	check := func(row []string) {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		check(row)
	}
	check(totalRow)
	return widths
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		if i == 0 {
			// Date column is left-aligned
			fmt.Printf(" %s │", padCell(value, widths[i], true))
		} else {
			fmt.Printf(" %s │", padCell(value, widths[i], false))
		}
	}
	fmt.Println()
}

// padCell pads by display width so wide runes in labels line up.
func padCell(value string, width int, leftAlign bool) string {
	actual := util.GetDisplayWidth(value)
	if actual >= width {
		return value
	}
	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return value + padding
	}
	return padding + value
}
