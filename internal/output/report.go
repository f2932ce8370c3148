package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/payoff-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport formats results and writes them to filename (timestamped when
// empty). It returns the path written. "all" writes the verbose console report
// and the schedule CSV side by side.
func GenerateReport(results *domain.PlanComparison, format, filename string) (string, error) {
	if f := GetFormatterByName(format); f != nil {
		return WriteFormatted(f, results, filename, Extension(f))
	}
	if NormalizeFormatName(format) == "all" {
		base := strings.TrimSuffix(filename, ".txt")
		txt, csv := "", ""
		if base != "" {
			txt, csv = base+".txt", base+".csv"
		}
		path, err := WriteFormatted(ConsoleVerboseFormatter{}, results, txt, "txt")
		if err != nil {
			return "", err
		}
		if _, err := WriteFormatted(CSVScheduleExporter{}, results, csv, "csv"); err != nil {
			return "", err
		}
		return path, nil
	}
	// enrich error with available formatters and aliases
	return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
