package formatter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alevsk/kconfig-scope/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for formatting data
type Formatter interface {
	Format(data types.Result) (string, error)
}

// Type represents the type of formatter
type Type string

const (
	// TypeJSON formats data as JSON
	TypeJSON Type = "json"
	// TypeYAML formats data as YAML
	TypeYAML Type = "yaml"
	// TypeTable formats data as a table
	TypeTable Type = "table"
)

// JSON implements JSON formatting
type JSON struct{}

// YAML implements YAML formatting
type YAML struct{}

// Table implements table formatting
type Table struct{}

// Format formats data as JSON
func (j *JSON) Format(data types.Result) (string, error) {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting as JSON: %w", err)
	}
	return string(bytes), nil
}

// Format formats data as YAML
func (y *YAML) Format(data types.Result) (string, error) {
	bytes, err := yaml.Marshal(yamlView(data))
	if err != nil {
		return "", fmt.Errorf("error formatting as YAML: %w", err)
	}
	return string(bytes), nil
}

// yamlView flattens the result for YAML output; the error field is rendered
// as its message since error values have no natural YAML form
func yamlView(data types.Result) map[string]interface{} {
	view := map[string]interface{}{
		"version":          data.Version,
		"name":             data.Name,
		"source":           data.Source,
		"success":          data.Success,
		"timestamp":        data.Timestamp,
		"is_kernel_config": data.IsKernelConfig,
		"summary":          data.Summary,
	}
	if data.Error != nil {
		view["error"] = data.Error.Error()
	}
	if data.KernelConfig != "" {
		view["kernel_config"] = data.KernelConfig
	}
	if len(data.Tags) > 0 {
		view["tags"] = data.Tags
	}
	if len(data.Checksec) > 0 {
		view["checksec"] = data.Checksec
	}
	if len(data.Extra) > 0 {
		view["extra"] = data.Extra
	}
	return view
}

// Format formats data as a set of tables using go-pretty/v6/table
func (t *Table) Format(data types.Result) (string, error) {
	// Create verdict table
	verdictTable := table.NewWriter()
	verdictTable.SetOutputMirror(nil)
	verdictTable.SetStyle(table.StyleLight)
	verdictTable.Style().Options.SeparateColumns = true

	// Set title for verdict table
	verdictTable.SetTitle("KERNEL CONFIGURATION ANALYSIS")

	// Set the headers for verdict table
	verdictTable.AppendHeader(table.Row{
		"NAME",
		"KERNEL CONFIG",
		"SUMMARY",
		"TAGS",
	})

	verdictTable.AppendRow(table.Row{
		data.Name,
		data.IsKernelConfig,
		strings.Join(data.Summary, ","),
		strings.Join(data.Tags, ","),
	})

	output := verdictTable.Render()

	// One hardening table per checksec section, sorted for stable output
	sections := make([]string, 0, len(data.Checksec))
	for section := range data.Checksec {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		flags := data.Checksec[section]

		hardeningTable := table.NewWriter()
		hardeningTable.SetOutputMirror(nil)
		hardeningTable.SetStyle(table.StyleLight)
		hardeningTable.Style().Options.SeparateColumns = true
		hardeningTable.SetTitle("HARDENING: " + strings.ToUpper(section))
		hardeningTable.AppendHeader(table.Row{"FLAG", "VALUE"})

		keys := make([]string, 0, len(flags))
		for key := range flags {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			hardeningTable.AppendRow(table.Row{key, fmt.Sprintf("%v", flags[key])})
		}

		output += "\n\n" + hardeningTable.Render()
	}

	return output + "\n", nil
}

// ParseType converts a string to a Type
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeJSON, TypeYAML, TypeTable:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown formatter type: %s", s)
	}
}

// NewFormatter creates a new formatter of the specified type
func NewFormatter(t Type) (Formatter, error) {
	switch t {
	case TypeJSON:
		return &JSON{}, nil
	case TypeYAML:
		return &YAML{}, nil
	case TypeTable:
		return &Table{}, nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", t)
	}
}
