// Package cobaya provides the naming conventions shared by the cobaya
// sampler, theory and likelihood components.
//
// The package fixes canonical names for component kinds, parameter tags,
// input block keys, output fields, file suffixes and extensions, and the
// environment variables used by the installer. Everything here is built at
// package initialization and never mutated afterwards, so all functions are
// safe for concurrent use.
//
// # Compound Names
//
// Per-likelihood and per-prior output columns are derived by joining a base
// field with a caller-supplied name through the separator "__":
//
//	chi2__planck_2018
//	minuslogprior__0
//
// The separator must not appear inside the suffix. Compose functions do not
// check this; decompose functions reject names that lack the expected base.
//
//	name := cobaya.ComposeChi2Name("planck_2018")   // "chi2__planck_2018"
//	like, err := cobaya.DecomposeChi2Name(name)     // "planck_2018", nil
//	_, err = cobaya.DecomposeChi2Name("weight")     // errors.Is(err, cobaya.ErrInvalidName)
//
// # Registry
//
// Default returns the process-wide Registry holding the closed sets
// (component kinds, parameter tags) and lookup tables (subfolders, reserved
// attributes, cosmetic dump order). Package-level helpers such as
// SubfolderFor and IsReservedAttribute delegate to it.
//
// # Semstreams Integration
//
// The sample output fields are registered as predicates in init() using
// vocabulary.Register(), following the three-level dotted notation
// (cobaya.sample.<field>).
package cobaya
