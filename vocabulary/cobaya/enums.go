package cobaya

// ComponentKind represents one of the three pluggable roles of the framework.
type ComponentKind string

const (
	// KindSampler is a component that explores the posterior.
	KindSampler ComponentKind = "sampler"

	// KindTheory is a component that computes observables from parameters.
	KindTheory ComponentKind = "theory"

	// KindLikelihood is a component that evaluates data likelihoods.
	KindLikelihood ComponentKind = "likelihood"
)

// IsValid checks if the kind is one of the known component kinds.
func (k ComponentKind) IsValid() bool {
	switch k {
	case KindSampler, KindTheory, KindLikelihood:
		return true
	}
	return false
}

// String returns the string representation of the kind.
func (k ComponentKind) String() string {
	return string(k)
}

// ParseComponentKind converts a string to a ComponentKind.
// Returns an *UnknownKindError for values outside the closed set.
func ParseComponentKind(s string) (ComponentKind, error) {
	kind := ComponentKind(s)
	if !kind.IsValid() {
		return "", &UnknownKindError{Kind: s}
	}
	return kind, nil
}

// ParameterTag classifies entries inside a parameter's configuration block.
type ParameterTag string

const (
	// TagPrior is the prior definition of a sampled parameter.
	TagPrior ParameterTag = "prior"

	// TagRef is the reference pdf used to draw starting points.
	TagRef ParameterTag = "ref"

	// TagProposal is the proposal width hint.
	TagProposal ParameterTag = "proposal"

	// TagValue is a fixed value or a function of other parameters.
	TagValue ParameterTag = "value"

	// TagDist is the distribution name of a prior.
	TagDist ParameterTag = "dist"

	// TagDrop marks a parameter that is not passed to components.
	TagDrop ParameterTag = "drop"

	// TagDerived marks a derived parameter.
	TagDerived ParameterTag = "derived"

	// TagLatex is the LaTeX label of the parameter.
	TagLatex ParameterTag = "latex"

	// TagRenames lists alternative names of the parameter.
	TagRenames ParameterTag = "renames"
)

// IsValid checks if the tag is one of the known parameter tags.
func (t ParameterTag) IsValid() bool {
	switch t {
	case TagPrior, TagRef, TagProposal, TagValue, TagDist, TagDrop,
		TagDerived, TagLatex, TagRenames:
		return true
	}
	return false
}

// String returns the string representation of the tag.
func (t ParameterTag) String() string {
	return string(t)
}

// ParseParameterTag converts a string to a ParameterTag.
// Returns an *UnknownTagError for values outside the closed set.
func ParseParameterTag(s string) (ParameterTag, error) {
	tag := ParameterTag(s)
	if !tag.IsValid() {
		return "", &UnknownTagError{Tag: s}
	}
	return tag, nil
}
