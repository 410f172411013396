package optmap

import (
	"github.com/optmap/optmap/core"
	"github.com/optmap/optmap/display"
)

// Parse parses os.Args[1:] into the provided configuration struct.
//
// The target must be a pointer to a struct whose option fields carry a `flag`
// tag naming the primary flag verbatim, and optionally `short`, `help`,
// `default` and `required` tags:
//
//	cfg := struct {
//		optmap.Meta `name:"mytool" version:"1.0.0"`
//		optmap.Help
//
//		Filename   string `flag:"--filename" short:"-f" help:"Output file path"`
//		Iterations int    `flag:"--iterations" short:"-i" help:"Iteration count" default:"1"`
//	}{}
//
//	err := optmap.Parse(&cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Arguments are consumed strictly in flag/value pairs: every flag token must
// be followed by a value token. If the target embeds the Help marker, a bare
// -h or --help prints usage and exits; the Version marker does the same for
// --version.
var Parse = core.Parse

// ParseArgs parses an explicit argument sequence (excluding the program name)
// into the target configuration struct. Unlike Parse it never prints or
// exits: every outcome is returned to the caller.
//
// Failures are typed values from the errors package — UnknownFlagError,
// MissingValueError, CoercionError, MissingFlagError — and a failed parse
// leaves the target untouched.
var ParseArgs = core.ParseArgs

// SchemaFor returns the flag registry built for the target's struct type.
// The registry is constructed at most once per type and shared read-only by
// every subsequent parse of that type; a malformed declaration yields a
// SchemaError here, before any parsing is attempted.
var SchemaFor = core.SchemaFor

// BuildHelp generates and returns a formatted help message for a CLI tool
// defined by the given struct pointer. The tool name in the usage header
// comes from the embedded Meta marker's `name` tag.
//
// Example:
//
//	cfg := struct {
//		optmap.Meta `name:"mytool"`
//
//		Filename string `flag:"--filename" short:"-f" help:"Input file path"`
//		Verbose  bool   `flag:"--verbose" short:"-v" help:"Enable verbose output"`
//	}{}
//
//	helpText, err := optmap.BuildHelp(&cfg, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(helpText)
var BuildHelp = display.BuildHelp

// BuildVersion returns a formatted version string for the CLI tool defined
// by the provided struct pointer, e.g. "mytool v1.2.3". The version comes
// from the Meta or Version marker tags, falling back to module build info.
//
// Parse invokes this automatically when the Version marker is embedded and
// --version is passed.
var BuildVersion = display.BuildVersion

// BuildHelpWithParent exposes the subcommand-aware help builder for callers/tests.
func BuildHelpWithParent(parent any, subName string, subTarget any, long bool) (string, error) {
	return display.BuildHelpWithParent(parent, subName, subTarget, long)
}
