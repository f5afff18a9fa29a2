package cobaya

// Output file suffixes.
const (
	SuffixInput   = "input"
	SuffixUpdated = "updated"
)

// Output file extensions.
const (
	ExtensionYAML       = ".yaml"
	ExtensionYML        = ".yml"
	ExtensionDill       = ".dill_pickle"
	ExtensionCheckpoint = ".checkpoint"
	ExtensionProgress   = ".progress"
	ExtensionCovmat     = ".covmat"
	ExtensionEvidence   = ".logZ"
)

// YAMLExtensions returns the accepted YAML extensions, preferred first.
func YAMLExtensions() []string {
	return []string{ExtensionYAML, ExtensionYML}
}
