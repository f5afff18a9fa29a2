package cobaya

import "sync"

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, creating it on first call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Kinds returns the component kinds of the default registry.
func Kinds() []ComponentKind {
	return Default().Kinds()
}

// SubfolderFor returns the package subfolder of a component kind.
// Returns an *UnknownKindError for kinds outside the closed set.
func SubfolderFor(kind ComponentKind) (string, error) {
	return Default().Subfolder(kind)
}

// IsReservedAttribute reports whether name must be skipped when harvesting
// default options from a component class.
func IsReservedAttribute(name string) bool {
	return Default().IsReservedAttribute(name)
}

// DumpOrder returns the cosmetic block order of the default registry.
func DumpOrder() []string {
	return Default().DumpOrder()
}
