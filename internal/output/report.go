package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/fi-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the report in the named format to the working directory.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	_, err := GenerateReportTo(results, format, "")
	return err
}

// GenerateReportTo writes the report in the named format into dir and returns
// the written paths. The pseudo-format "all" writes the console table and the
// detailed CSV.
func GenerateReportTo(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		path, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	switch NormalizeFormatName(format) {
	case "all":
		var paths []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			path, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	default:
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
}

// Render formats results without touching the filesystem.
func Render(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return f.Format(results)
}

// SaveConfiguration writes a scenario set as YAML.
func SaveConfiguration(config *domain.ScenarioSet, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
