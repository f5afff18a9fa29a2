package cobaya

import "sort"

// Registry holds the closed sets and lookup tables of the naming conventions.
// A Registry is never mutated after construction; accessors return copies.
type Registry struct {
	kinds      []ComponentKind
	subfolders map[ComponentKind]string
	reserved   map[string]struct{}
	tags       []ParameterTag
	dumpOrder  []string
}

// NewRegistry creates a registry with the standard conventions.
func NewRegistry() *Registry {
	return &Registry{
		kinds: []ComponentKind{KindSampler, KindTheory, KindLikelihood},
		subfolders: map[ComponentKind]string{
			KindLikelihood: "likelihoods",
			KindSampler:    "samplers",
			KindTheory:     "theories",
		},
		// Skipped by class introspection when collecting default options.
		reserved: map[string]struct{}{
			KeyInputParams:    {},
			KeyOutputParams:   {},
			KeyInstallOptions: {},
			KeyBibtexFile:     {},
			KeyFileBaseName:   {},
		},
		tags: []ParameterTag{
			TagPrior, TagRef, TagProposal, TagValue, TagDist, TagDrop,
			TagDerived, TagLatex, TagRenames,
		},
		// Purely cosmetic.
		dumpOrder: []string{
			string(KindTheory), string(KindLikelihood), KeyPrior, KeyParams,
			string(KindSampler), KeyPost,
		},
	}
}

// Kinds returns the component kinds in canonical order.
func (r *Registry) Kinds() []ComponentKind {
	return append([]ComponentKind(nil), r.kinds...)
}

// Subfolder returns the package subfolder holding components of a kind.
func (r *Registry) Subfolder(kind ComponentKind) (string, error) {
	folder, ok := r.subfolders[kind]
	if !ok {
		return "", &UnknownKindError{Kind: string(kind)}
	}
	return folder, nil
}

// IsReservedAttribute reports whether name is a reserved class attribute.
func (r *Registry) IsReservedAttribute(name string) bool {
	_, ok := r.reserved[name]
	return ok
}

// ReservedAttributes returns the reserved attribute names, sorted.
func (r *Registry) ReservedAttributes() []string {
	names := make([]string, 0, len(r.reserved))
	for name := range r.reserved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParameterTags returns the parameter tags in canonical order.
func (r *Registry) ParameterTags() []ParameterTag {
	return append([]ParameterTag(nil), r.tags...)
}

// DumpOrder returns the conventional order of top-level blocks when dumping
// an input to YAML.
func (r *Registry) DumpOrder() []string {
	return append([]string(nil), r.dumpOrder...)
}
