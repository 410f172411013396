package core

// These empty structs serve as declarative annotations embedded within
// user-defined configuration structs. The schema builder and the display
// helpers detect them by reflection and adjust behavior accordingly.
//
// They carry no data or methods themselves and are exercised through the
// functionality that consumes them.

// === META MARKERS ===

// Meta carries tool-level metadata via struct tags, e.g.
// `name:"mytool" version:"1.2.3"`.
type Meta struct{}

// Version enables automatic handling of a bare --version token in Parse.
type Version struct{}

// Help enables automatic handling of bare -h/--help tokens in Parse.
type Help struct{}
