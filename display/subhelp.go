package display

import (
	"fmt"
	"strings"

	"github.com/optmap/optmap/internal/common"
)

// BuildHelpWithParent builds help for a subcommand while showing the parent
// application name and the subcommand name together (e.g. "app serve [OPTIONS]").
func BuildHelpWithParent(parent any, subName string, subTarget any, long bool) (string, error) {
	_ = long
	if !common.IsStructPtr(subTarget) {
		return "", fmt.Errorf("invalid type: must pass pointer to struct")
	}

	parentName := ""
	if common.IsStructPtr(parent) {
		parentName = common.MetaTag(common.StructType(parent), common.TagName)
	}
	if parentName == "" {
		parentName = "<app>"
	}

	fullName := parentName + " " + subName
	st := common.StructType(subTarget)

	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(fullName, ansiBold))

	for _, req := range requiredFlags(st) {
		builder.WriteString(" " + req)
	}
	if hasOptions(st) {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if hasOptions(st) {
		builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(optionsHelp(st))
	}

	return builder.String(), nil
}
