package metasys

import (
	"fmt"
	"strings"
)

// Reference is a parsed item reference of the form
// "site:device/path.segment.segment". The path part is absent for
// references that denote the device (engine) itself.
type Reference struct {
	Site   string
	Device string
	Path   []string
}

// ParseReference parses an item reference string. It fails with
// ErrInvalidReference when the minimum "site:device" structure is missing
// or the dotted path cannot be decomposed.
func ParseReference(ref string) (*Reference, error) {
	prefix, rest, hasPath := strings.Cut(ref, "/")

	site, device, found := strings.Cut(prefix, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q has no site:device separator", ErrInvalidReference, ref)
	}

	if site == "" {
		return nil, fmt.Errorf("%w: %q has an empty site name", ErrInvalidReference, ref)
	}

	if device == "" {
		return nil, fmt.Errorf("%w: %q has an empty device name", ErrInvalidReference, ref)
	}

	parsed := &Reference{Site: site, Device: device}

	if !hasPath {
		return parsed, nil
	}

	parsed.Path = strings.Split(rest, ".")
	for _, segment := range parsed.Path {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q has an empty path segment", ErrInvalidReference, ref)
		}
	}

	return parsed, nil
}

// Prefix returns the "site:device" part of the reference.
func (r *Reference) Prefix() string {
	return r.Site + ":" + r.Device
}

// IsEngine reports whether the reference denotes the device itself rather
// than a path within it.
func (r *Reference) IsEngine() bool {
	return len(r.Path) == 0
}

// String reassembles the reference.
func (r *Reference) String() string {
	if r.IsEngine() {
		return r.Prefix()
	}

	return r.Prefix() + "/" + strings.Join(r.Path, ".")
}
