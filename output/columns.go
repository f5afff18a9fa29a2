package output

import "github.com/c360studio/cobayaconv/vocabulary/cobaya"

// Columns returns the header of a sample table:
// weight, minuslogpost, sampled and derived parameters, the total and
// per-prior minuslogprior, then the total and per-likelihood chi2.
func Columns(sampled, derived, priors, likelihoods []string) []string {
	cols := make([]string, 0, 4+len(sampled)+len(derived)+len(priors)+len(likelihoods))
	cols = append(cols, cobaya.FieldWeight, cobaya.FieldMinusLogPost)
	cols = append(cols, sampled...)
	cols = append(cols, derived...)
	cols = append(cols, cobaya.FieldMinusLogPrior)
	cols = append(cols, cobaya.MinusLogPriorNamesFor(priors)...)
	cols = append(cols, cobaya.FieldChi2)
	cols = append(cols, cobaya.Chi2NamesFor(likelihoods)...)
	return cols
}
