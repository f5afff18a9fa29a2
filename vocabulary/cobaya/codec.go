package cobaya

import "strings"

// ComposeName joins base and suffix with the parameter name separator.
func ComposeName(base, suffix string) string {
	return base + Separator + suffix
}

// DecomposeName returns the suffix of a compound name built from base.
// Returns an *InvalidNameError if compound does not start with base and the
// separator.
func DecomposeName(base, compound string) (string, error) {
	suffix, ok := strings.CutPrefix(compound, base+Separator)
	if !ok {
		return "", &InvalidNameError{Name: compound, Base: base}
	}
	return suffix, nil
}

// ComposeChi2Name returns the chi^2 field name of a likelihood.
func ComposeChi2Name(likelihood string) string {
	return ComposeName(FieldChi2, likelihood)
}

// DecomposeChi2Name returns the likelihood name of a chi^2 field.
func DecomposeChi2Name(compound string) (string, error) {
	return DecomposeName(FieldChi2, compound)
}

// ComposeMinusLogPriorName returns the minus-log-prior field name of a prior.
func ComposeMinusLogPriorName(prior string) string {
	return ComposeName(FieldMinusLogPrior, prior)
}

// DecomposeMinusLogPriorName returns the prior name of a minus-log-prior field.
func DecomposeMinusLogPriorName(compound string) (string, error) {
	return DecomposeName(FieldMinusLogPrior, compound)
}

// Chi2NamesFor maps ComposeChi2Name over likelihoods, preserving order.
func Chi2NamesFor(likelihoods []string) []string {
	return composeAll(FieldChi2, likelihoods)
}

// MinusLogPriorNamesFor maps ComposeMinusLogPriorName over priors, preserving
// order.
func MinusLogPriorNamesFor(priors []string) []string {
	return composeAll(FieldMinusLogPrior, priors)
}

func composeAll(base string, suffixes []string) []string {
	names := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		names = append(names, ComposeName(base, s))
	}
	return names
}

// Chi2Label returns the LaTeX label of the chi^2 of a likelihood.
// Underscores become escaped spaces so the name renders inside \mathrm.
func Chi2Label(likelihood string) string {
	return `\chi^2_\mathrm{` + strings.ReplaceAll(likelihood, "_", `\ `) + `}`
}
