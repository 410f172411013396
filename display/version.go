package display

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"

	"github.com/optmap/optmap/errors"
	"github.com/optmap/optmap/internal/common"
)

// BuildVersion returns a formatted version string for the tool defined by the
// configuration struct behind target, e.g. "mytool v1.2.3". The version comes
// from the Meta marker's version tag, a Version marker's version tag, or as a
// last resort the module's build info.
func BuildVersion(target any) (string, error) {
	if !common.IsStructPtr(target) {
		return "", fmt.Errorf("invalid type: must pass pointer to struct")
	}

	t := common.StructType(target)
	name := common.MetaTag(t, common.TagName)

	versionFromMeta := common.MetaTag(t, common.TagVersion)
	versionFromMarker := markerVersionTag(t)

	if versionFromMeta != "" && versionFromMarker != "" && versionFromMeta != versionFromMarker {
		return "", errors.NewSchemaError(t.String(),
			"conflicting version tags: both Meta and Version markers specify a version")
	}

	version := versionFromMarker
	if version == "" {
		version = versionFromMeta
	}

	if name != "" {
		name = name + " "
	}

	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified", nil
		}
		version = strings.TrimPrefix(inferred, "v")
	}

	return fmt.Sprintf("%sv%s", name, version), nil
}

// markerVersionTag reads the version tag off an embedded Version marker.
func markerVersionTag(t reflect.Type) string {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if common.IsMarker(field, "Version") {
			if tag := field.Tag.Get(common.TagVersion); tag != "" {
				return tag
			}
		}
	}
	return ""
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", fmt.Errorf("no version info found in build metadata")
}
