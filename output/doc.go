// Package output names the artifacts of a run from its output prefix.
//
// A prefix such as "chains/test" places every file in the "chains" folder,
// named after "test":
//
//	chains/test.input.yaml
//	chains/test.updated.yaml
//	chains/test.checkpoint
//	chains/test.covmat
//
// A prefix ending in a path separator names a folder only, and the files
// drop the leading name (chains/input.yaml).
package output
