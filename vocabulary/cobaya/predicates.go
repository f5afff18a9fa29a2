package cobaya

import "github.com/c360studio/semstreams/vocabulary"

// Sample predicates describe the columns of a sample collection.
const (
	// SampleWeight is the weight of a sample.
	SampleWeight = "cobaya.sample.weight"

	// SampleMinusLogPost is the negative log-posterior of a sample.
	SampleMinusLogPost = "cobaya.sample.minuslogpost"

	// SampleMinusLogPrior is the total negative log-prior of a sample.
	// Per-prior values use the compound names minuslogprior__<prior>.
	SampleMinusLogPrior = "cobaya.sample.minuslogprior"

	// SampleChi2 is the total chi^2 of a sample.
	// Per-likelihood values use the compound names chi2__<likelihood>.
	SampleChi2 = "cobaya.sample.chi2"
)

// Namespace is the IRI namespace for sample terms.
const Namespace = "https://cobaya.dev/ontology/sample/"

// fieldPredicates maps output field names to their predicates.
var fieldPredicates = map[string]string{
	FieldWeight:        SampleWeight,
	FieldMinusLogPost:  SampleMinusLogPost,
	FieldMinusLogPrior: SampleMinusLogPrior,
	FieldChi2:          SampleChi2,
}

// FieldPredicates returns a copy of the output field to predicate mapping.
func FieldPredicates() map[string]string {
	m := make(map[string]string, len(fieldPredicates))
	for field, pred := range fieldPredicates {
		m[field] = pred
	}
	return m
}

// FieldPredicate returns the predicate of an output field.
func FieldPredicate(field string) (string, bool) {
	pred, ok := fieldPredicates[field]
	return pred, ok
}

func init() {
	vocabulary.Register(SampleWeight,
		vocabulary.WithDescription("Sample weight"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+FieldWeight))

	vocabulary.Register(SampleMinusLogPost,
		vocabulary.WithDescription("Negative log-posterior, or total negative log-probability"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+FieldMinusLogPost))

	vocabulary.Register(SampleMinusLogPrior,
		vocabulary.WithDescription("Total negative log-prior"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+FieldMinusLogPrior))

	vocabulary.Register(SampleChi2,
		vocabulary.WithDescription("Total chi^2 = -2 * loglike"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+FieldChi2))
}
