package core

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/optmap/optmap/errors"
	"github.com/optmap/optmap/internal/common"
)

// OptionField describes one declared, bindable option: the struct field it
// controls, the semantic type a raw value must coerce to, and the flag
// strings that select it. Constructed once per schema, immutable afterward.
type OptionField struct {
	Name     string       // struct field name, for diagnostics
	Kind     reflect.Kind // semantic value type
	Flag     string       // primary flag, e.g. "--filename"
	Short    string       // optional short flag, e.g. "-f", "" if absent
	Help     string       // help text, only used in usage output
	Default  string       // default literal, "" if absent
	Required bool

	index int // field index within the configuration struct
}

// Flags returns the flag strings that select this field.
func (o *OptionField) Flags() []string {
	if o.Short == "" {
		return []string{o.Flag}
	}
	return []string{o.Flag, o.Short}
}

// Subcommand describes a struct-typed field dispatched by its declared name.
type Subcommand struct {
	Name   string
	Help   string
	Schema *Schema

	index int
}

// Schema is the immutable flag -> OptionField mapping for one configuration
// struct type. It is built exactly once per type and shared read-only across
// all subsequent parses of that type, so concurrent reads need no locking.
type Schema struct {
	goType  reflect.Type
	fields  []*OptionField
	byFlag  map[string]*OptionField
	subs    []*Subcommand
	byName  map[string]*Subcommand
	name    string
	version string
}

// Type returns the configuration struct type this schema was built from.
func (s *Schema) Type() reflect.Type { return s.goType }

// Name returns the tool name declared on the Meta marker, or "".
func (s *Schema) Name() string { return s.name }

// VersionTag returns the version declared on the Meta marker, or "".
func (s *Schema) VersionTag() string { return s.version }

// Contains reports whether flag is registered in the schema. Pure lookup, no
// side effects.
func (s *Schema) Contains(flag string) bool {
	_, ok := s.byFlag[flag]
	return ok
}

// Resolve returns the OptionField registered for flag, or nil if the flag is
// not registered. The parser always checks Contains first; a nil result is a
// programming error in the caller, not a user-facing failure.
func (s *Schema) Resolve(flag string) *OptionField {
	return s.byFlag[flag]
}

// Options returns the declared option fields in declaration order.
func (s *Schema) Options() []*OptionField { return s.fields }

// Subcommands returns the declared subcommands in declaration order.
func (s *Schema) Subcommands() []*Subcommand { return s.subs }

// Lookup returns the subcommand registered under name, or nil.
func (s *Schema) Lookup(name string) *Subcommand { return s.byName[name] }

type schemaEntry struct {
	schema *Schema
	err    error
}

// schemaCache holds one entry per configuration struct type, including failed
// builds, so a malformed declaration fails identically on every use.
var schemaCache sync.Map // reflect.Type -> *schemaEntry

// SchemaFor returns the schema for the target's struct type, building it on
// first use. The target must be a pointer to a struct.
func SchemaFor(target any) (*Schema, error) {
	if !common.IsStructPtr(target) {
		return nil, errors.NewSchemaError(fmt.Sprintf("%T", target), "must pass pointer to struct")
	}
	return schemaForType(common.StructType(target))
}

func schemaForType(t reflect.Type) (*Schema, error) {
	if e, ok := schemaCache.Load(t); ok {
		entry := e.(*schemaEntry)
		return entry.schema, entry.err
	}
	schema, err := buildSchema(t)
	if err != nil {
		schema = nil
	}
	e, _ := schemaCache.LoadOrStore(t, &schemaEntry{schema: schema, err: err})
	entry := e.(*schemaEntry)
	return entry.schema, entry.err
}

// buildSchema enumerates the struct's fields and registers every declared
// option flag. All declaration mistakes surface here, before any parse.
func buildSchema(t reflect.Type) (*Schema, error) {
	schema := &Schema{
		goType:  t,
		byFlag:  make(map[string]*OptionField),
		byName:  make(map[string]*Subcommand),
		name:    common.MetaTag(t, common.TagName),
		version: common.MetaTag(t, common.TagVersion),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			// Marker embeds (Meta, Help, Version) carry no bindable value.
			continue
		}

		if name := field.Tag.Get(common.TagCmd); name != "" {
			sub, err := buildSubcommand(t, field, name, i)
			if err != nil {
				return nil, err
			}
			if _, dup := schema.byName[name]; dup {
				return nil, errors.NewSchemaError(t.String(), fmt.Sprintf("duplicate subcommand %q", name))
			}
			schema.byName[name] = sub
			schema.subs = append(schema.subs, sub)
			continue
		}

		flag := field.Tag.Get(common.TagFlag)
		if flag == "" {
			// Plain data field, ignored.
			continue
		}

		opt, err := buildOption(t, field, flag, i)
		if err != nil {
			return nil, err
		}
		for _, f := range opt.Flags() {
			if prev, dup := schema.byFlag[f]; dup {
				return nil, errors.NewSchemaError(t.String(),
					fmt.Sprintf("flag %q declared by both %s and %s", f, prev.Name, opt.Name))
			}
			schema.byFlag[f] = opt
		}
		schema.fields = append(schema.fields, opt)
	}

	if len(schema.byFlag) == 0 && len(schema.subs) == 0 {
		return nil, errors.NewSchemaError(t.String(), "no option fields declared")
	}
	return schema, nil
}

func buildOption(t reflect.Type, field reflect.StructField, flag string, index int) (*OptionField, error) {
	if !field.IsExported() {
		return nil, errors.NewSchemaError(t.String(), fmt.Sprintf("option field %s must be exported", field.Name))
	}
	if !strings.HasPrefix(flag, "--") || len(flag) < 3 {
		return nil, errors.NewSchemaError(t.String(),
			fmt.Sprintf("field %s: primary flag %q must have the form \"--name\"", field.Name, flag))
	}
	if !supportedKind(field.Type.Kind()) {
		return nil, errors.NewSchemaError(t.String(),
			fmt.Sprintf("field %s: unsupported type %s", field.Name, field.Type))
	}

	opt := &OptionField{
		Name:     field.Name,
		Kind:     field.Type.Kind(),
		Flag:     flag,
		Help:     field.Tag.Get(common.TagHelp),
		Required: field.Tag.Get(common.TagRequired) == "true",
		index:    index,
	}

	if short := field.Tag.Get(common.TagShort); short != "" {
		if !strings.HasPrefix(short, "-") || strings.HasPrefix(short, "--") || len(short) < 2 {
			return nil, errors.NewSchemaError(t.String(),
				fmt.Sprintf("field %s: short flag %q must have the form \"-x\"", field.Name, short))
		}
		opt.Short = short
	}

	if def := field.Tag.Get(common.TagDefault); def != "" {
		probe := reflect.New(field.Type).Elem()
		if err := coerce(probe, def); err != nil {
			return nil, errors.NewSchemaError(t.String(),
				fmt.Sprintf("field %s: default %q does not coerce to %s: %v", field.Name, def, field.Type, err))
		}
		opt.Default = def
	}

	return opt, nil
}

func buildSubcommand(t reflect.Type, field reflect.StructField, name string, index int) (*Subcommand, error) {
	if !field.IsExported() {
		return nil, errors.NewSchemaError(t.String(), fmt.Sprintf("subcommand field %s must be exported", field.Name))
	}
	if field.Type.Kind() != reflect.Struct {
		return nil, errors.NewSchemaError(t.String(),
			fmt.Sprintf("subcommand field %s must be a struct, got %s", field.Name, field.Type))
	}
	sub, err := schemaForType(field.Type)
	if err != nil {
		return nil, errors.NewSchemaError(t.String(), fmt.Sprintf("subcommand %q: %v", name, err))
	}
	return &Subcommand{
		Name:   name,
		Help:   field.Tag.Get(common.TagHelp),
		Schema: sub,
		index:  index,
	}, nil
}
