// Package output renders engine results for the CLI in several formats,
// selected by name the way the calculate command's --format flag expects.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
	"github.com/dohyun-im/saegil/internal/simulation"
)

// Report bundles everything one engine run produced. Sections that were
// not requested stay nil and are skipped by the formatters.
type Report struct {
	Analysis   *domain.DebtAnalysisResult  `json:"analysis,omitempty"`
	Plans      []domain.RestructuringPlan  `json:"plans,omitempty"`
	Simulation *domain.SimulationResult    `json:"simulation,omitempty"`
	Comparison *simulation.PlanComparison  `json:"comparison,omitempty"`
}

// Formatter renders a report to a string.
type Formatter interface {
	Format(report *Report) (string, error)
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// JSONFormatter marshals the whole report as indented JSON.
type JSONFormatter struct{}

// Format implements Formatter.
func (jf *JSONFormatter) Format(report *Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

// FormatKRW renders a won amount with thousands separators, e.g.
// "₩87,500,000". Fractions are dropped; the engine rounds payments to
// whole won anyway.
func FormatKRW(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := "₩" + sb.String()
	if neg {
		out = "-" + out
	}
	return out
}
