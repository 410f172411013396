package optmap

import "github.com/optmap/optmap/core"

// Meta is the primary metadata marker for CLI definitions.
//
// Embed it in the root configuration struct to declare tool-level metadata
// such as the tool's name and version via struct tags:
//
//	cfg := struct {
//	    optmap.Meta `name:"mytool" version:"1.0.0"`
//	    ...
//	}{}
//
// The name appears in the usage header of generated help output; the version
// feeds BuildVersion.
type Meta = core.Meta

// Version is a marker type that indicates the CLI tool supports a bare
// `--version` token.
//
// When embedded in the root struct, Parse intercepts --version, prints the
// version string and exits. If the `version` struct tag is set on the marker
// it is used directly; otherwise the Meta marker's version tag or the module
// build info supplies it.
//
// Usage:
//
//	cfg := struct {
//	    optmap.Meta `name:"mytool"`
//	    optmap.Version `version:"1.0.0"`
//	}{}
type Version = core.Version

// Help is a marker type that enables automatic `-h` and `--help` handling.
//
// When embedded in the root struct, Parse intercepts a bare -h or --help
// token ahead of the pairwise flag/value walk, prints usage and exits. This
// is the one place a flag token requires no value; ParseArgs never does this.
//
// Usage:
//
//	cfg := struct {
//	    optmap.Meta `name:"mytool"`
//	    optmap.Help
//	    ...
//	}{}
type Help = core.Help

// Schema is the immutable flag registry built once per configuration struct
// type. See SchemaFor.
type Schema = core.Schema

// OptionField describes one declared, bindable option within a Schema.
type OptionField = core.OptionField

// Subcommand describes a struct-typed field dispatched by its declared name.
type Subcommand = core.Subcommand
