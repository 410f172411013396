package core

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/optmap/optmap/display"
	"github.com/optmap/optmap/errors"
	"github.com/optmap/optmap/internal/common"
)

var osExit = os.Exit // Mockable for testing

// ParseArgs parses an argument sequence of alternating flag and value tokens
// into the target configuration struct. The sequence excludes the program
// name: position 0 is a flag, position 1 its value, and so on.
//
// A fresh instance is populated internally and copied onto the target only
// when the whole sequence parses; on any failure the target is left exactly
// as it was.
func ParseArgs(target any, args []string) error {
	schema, err := SchemaFor(target)
	if err != nil {
		return err
	}
	fresh := reflect.New(schema.goType).Elem()
	if err := parseInto(schema, fresh, args); err != nil {
		return err
	}
	reflect.ValueOf(target).Elem().Set(fresh)
	return nil
}

// parseInto walks args two tokens at a time and populates dst. dst is always
// a local, freshly constructed value, never caller-visible state.
func parseInto(schema *Schema, dst reflect.Value, args []string) error {
	if err := applyDefaults(schema, dst); err != nil {
		return err
	}

	// A leading non-flag token selects a subcommand when any are declared.
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") && len(schema.subs) > 0 {
		name := args[0]
		sub := schema.Lookup(name)
		if sub == nil {
			return errors.NewUnknownSubcommand(name, closestMatch(name, schema.subcommandNames()))
		}
		subDst := dst.Field(sub.index)
		if err := parseInto(sub.Schema, subDst, args[1:]); err != nil {
			return err
		}
		markInvoked(subDst)
		return nil
	}

	seen := make(map[string]bool)
	for i := 0; i < len(args); i += 2 {
		flag := args[i]
		if !schema.Contains(flag) {
			return errors.NewUnknownFlag(flag, i)
		}
		if i+1 >= len(args) {
			return errors.NewMissingValue(flag, i)
		}
		opt := schema.Resolve(flag)
		raw := args[i+1]
		if len(raw) > MaxValueLength {
			return errors.NewCoercion(opt.Name, flag, raw[:MaxValueLength], errValueTooLong)
		}
		// Repeated flags overwrite: last occurrence wins.
		if err := coerce(dst.Field(opt.index), raw); err != nil {
			return errors.NewCoercion(opt.Name, flag, raw, err)
		}
		seen[opt.Name] = true
	}

	for _, opt := range schema.fields {
		if opt.Required && !seen[opt.Name] {
			return errors.NewMissingFlag(opt.Name, opt.Flag)
		}
	}
	return nil
}

// applyDefaults writes declared default literals into dst before the walk.
// Defaults were validated at schema build time, so coercion cannot fail here.
func applyDefaults(schema *Schema, dst reflect.Value) error {
	for _, opt := range schema.fields {
		if opt.Default == "" {
			continue
		}
		if err := coerce(dst.Field(opt.index), opt.Default); err != nil {
			return errors.NewCoercion(opt.Name, opt.Flag, opt.Default, err)
		}
	}
	return nil
}

// markInvoked records subcommand dispatch on an `Invoked bool` plain field,
// when the subcommand struct declares one.
func markInvoked(dst reflect.Value) {
	f := dst.FieldByName("Invoked")
	if f.IsValid() && f.CanSet() && f.Kind() == reflect.Bool {
		f.SetBool(true)
	}
}

func (s *Schema) subcommandNames() []string {
	names := make([]string, 0, len(s.subs))
	for _, sub := range s.subs {
		names = append(names, sub.Name)
	}
	return names
}

// Parse parses os.Args[1:] into the target configuration struct.
//
// When the target embeds the Help marker, a bare -h or --help token prints
// usage and exits; the Version marker does the same for --version. All other
// tokens follow the strict flag/value pairing of ParseArgs.
func Parse(target any) error {
	return parseTop(target, os.Args[1:])
}

func parseTop(target any, args []string) error {
	schema, err := SchemaFor(target)
	if err != nil {
		return err
	}

	if common.HasMarker(schema.goType, "Help") {
		for _, a := range args {
			if a == "-h" || a == "--help" {
				help, err := display.BuildHelp(target, a == "--help")
				if err != nil {
					return err
				}
				fmt.Println(help)
				osExit(0)
			}
		}
	}
	if common.HasMarker(schema.goType, "Version") {
		for _, a := range args {
			if a == "--version" {
				version, err := display.BuildVersion(target)
				if err != nil {
					return err
				}
				fmt.Println(version)
				osExit(0)
			}
		}
	}

	// Subcommand help shows the parent and subcommand names together.
	if len(args) > 1 && !strings.HasPrefix(args[0], "-") {
		if sub := schema.Lookup(args[0]); sub != nil && common.HasMarker(sub.Schema.goType, "Help") {
			for _, a := range args[1:] {
				if a == "-h" || a == "--help" {
					subPtr := reflect.New(sub.Schema.goType).Interface()
					help, err := display.BuildHelpWithParent(target, sub.Name, subPtr, a == "--help")
					if err != nil {
						return err
					}
					fmt.Println(help)
					osExit(0)
				}
			}
		}
	}

	return ParseArgs(target, args)
}

// closestMatch returns the candidate with the smallest edit distance to target, or
// empty string if none are within a reasonable threshold.
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	low := strings.ToLower(target)
	// Prefer prefix matches (case-insensitive)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), low) {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		lc := strings.ToLower(c)
		// Quick length check to avoid large distances
		if abs(len(lc)-len(low)) > 3 {
			continue
		}
		// Treat single transposition as distance 1
		if isTransposition(low, lc) {
			return c
		}
		d := levenshtein(low, lc)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	// Only suggest if distance is small (adaptive threshold)
	if bestDist >= 0 && bestDist <= max(2, len(low)/3) {
		return best
	}
	return ""
}

// isTransposition checks for one-character transposition (Damerau case)
func isTransposition(a, b string) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var diff []int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff = append(diff, i)
			if len(diff) > 2 {
				return false
			}
		}
	}
	if len(diff) != 2 {
		return false
	}
	return a[diff[0]] == b[diff[1]] && a[diff[1]] == b[diff[0]]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// levenshtein computes the Levenshtein edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la := len(a)
	lb := len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	// Two rolling rows are enough
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		ai := a[i-1]
		for j := 1; j <= lb; j++ {
			cost := 0
			if ai != b[j-1] {
				cost = 1
			}
			d := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			curr[j] = d
		}
		copy(prev, curr)
	}
	return prev[lb]
}
