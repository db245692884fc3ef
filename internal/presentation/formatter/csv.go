package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{"Date", "Minutes", "Percent"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range report.Trend {
		record := []string{
			day.Label,
			fmt.Sprintf("%d", day.Minutes),
			fmt.Sprintf("%d", day.Percent),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
