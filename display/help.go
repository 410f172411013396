package display

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/optmap/optmap/internal/common"
)

// BuildHelp generates a formatted usage message for the configuration struct
// behind target. The long parameter is kept for API symmetry with -h/--help;
// both forms currently render the same output.
func BuildHelp(target any, long bool) (string, error) {
	_ = long
	if !common.IsStructPtr(target) {
		return "", fmt.Errorf("invalid type: must pass pointer to struct")
	}

	t := common.StructType(target)
	name := common.MetaTag(t, common.TagName)
	if name == "" {
		name = "<app>"
	}

	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(name, ansiBold))

	for _, req := range requiredFlags(t) {
		builder.WriteString(" " + req)
	}
	if hasSubcommands(t) {
		builder.WriteString(" <COMMAND>")
	}
	if hasOptions(t) {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if subHelp := subcommandsHelp(t); subHelp != "" {
		builder.WriteString("\n" + ansiHelp("Subcommands:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(subHelp)
	}

	if hasOptions(t) {
		builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(optionsHelp(t))
	}

	return builder.String(), nil
}

// === HELPERS ===

// placeholder renders the value slot shown next to a flag, e.g. "<FILENAME>".
func placeholder(fieldName string) string {
	return "<" + strings.ToUpper(strings.ReplaceAll(common.KebabCase(fieldName), "-", "_")) + ">"
}

// requiredFlags lists required option spellings for the usage line.
func requiredFlags(t reflect.Type) []string {
	var out []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || field.Tag.Get(common.TagFlag) == "" {
			continue
		}
		if field.Tag.Get(common.TagRequired) == "true" {
			out = append(out, field.Tag.Get(common.TagFlag)+" "+placeholder(field.Name))
		}
	}
	return out
}

// subcommandsHelp returns formatted subcommand lines for the target type.
func subcommandsHelp(t reflect.Type) string {
	var lines []string
	maxLen := 0

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get(common.TagCmd)
		if field.Anonymous || name == "" {
			continue
		}
		line := fmt.Sprintf("  %s||%s", name, field.Tag.Get(common.TagHelp))
		if n := strings.Index(line, "||"); n > maxLen {
			maxLen = n
		}
		lines = append(lines, line)
	}

	return alignRows(lines, maxLen)
}

// optionsHelp returns the aligned options table for the target type.
func optionsHelp(t reflect.Type) string {
	var lines []string
	maxLen := 0

	add := func(flagPart, desc string) {
		if len(flagPart) > maxLen {
			maxLen = len(flagPart)
		}
		lines = append(lines, flagPart+"||"+desc)
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		flag := field.Tag.Get(common.TagFlag)
		if field.Anonymous || flag == "" {
			continue
		}

		short := field.Tag.Get(common.TagShort)
		slot := placeholder(field.Name)
		var spelling string
		if short != "" {
			spelling = fmt.Sprintf("  %s, %s %s", short, flag, slot)
		} else {
			spelling = fmt.Sprintf("  %s %s", flag, slot)
		}

		desc := field.Tag.Get(common.TagHelp)
		if field.Tag.Get(common.TagRequired) == "true" {
			desc = strings.TrimSpace(desc + " (required)")
		}
		if def := field.Tag.Get(common.TagDefault); def != "" {
			desc = strings.TrimSpace(desc + fmt.Sprintf(" [default: %s]", def))
		}
		add(spelling, desc)
	}

	if common.HasMarker(t, "Help") {
		add("  -h, --help", "Show this help message")
	}
	if common.HasMarker(t, "Version") || common.MetaTag(t, common.TagVersion) != "" {
		add("  --version", "Show version information")
	}

	return alignRows(lines, maxLen)
}

// alignRows pads "flag||desc" rows so descriptions start in one column.
func alignRows(lines []string, maxLen int) string {
	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", parts[0], padding, parts[1]))
	}
	return builder.String()
}

// hasOptions checks if the target type declares any option flags or markers
// that surface as flags.
func hasOptions(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous && field.Tag.Get(common.TagFlag) != "" {
			return true
		}
	}
	return common.HasMarker(t, "Help") || common.HasMarker(t, "Version") ||
		common.MetaTag(t, common.TagVersion) != ""
}

// hasSubcommands checks if the target type declares any subcommand fields.
func hasSubcommands(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous && field.Tag.Get(common.TagCmd) != "" {
			return true
		}
	}
	return false
}
