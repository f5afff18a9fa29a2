package cobaya

// Input block and field keys.
// Centralised here so that the loader, the components and the output writer
// agree on the spelling.
const (
	KeyPrior              = "prior"
	KeyPost               = "post"
	KeyPostAdd            = "add"
	KeyPostRemove         = "remove"
	KeyPostSuffix         = "suffix"
	KeyParams             = "params"
	KeyAutoParams         = "auto_params"
	KeyInputParams        = "input_params"
	KeyOutputParams       = "output_params"
	KeyInputParamsPrefix  = "input_params_prefix"
	KeyOutputParamsPrefix = "output_params_prefix"
	KeyDebug              = "debug"
	KeyDebugFile          = "debug_file"
	KeyOutput             = "output"
	KeyPackagesPath       = "packages_path"
	KeyExternal           = "external"
	KeyClassName          = "class"
	KeyProvides           = "provides"
	KeyRequires           = "requires"
	KeyResume             = "resume"
	KeyTiming             = "timing"
	KeyForce              = "force"
	KeyTestRun            = "test"
	KeyComponentPath      = "python_path"
	KeyAliases            = "aliases"
	KeyVersion            = "version"

	// Class attributes rather than input blocks. Reserved, see Registry.
	KeyInstallOptions = "install_options"
	KeyBibtexFile     = "bibtex_file"
	KeyFileBaseName   = "file_base_name"
)

// Run defaults.
const (
	DebugDefault  = false
	ResumeDefault = false
)

// Names of the fields of a sample, internally and in the output.
const (
	// FieldWeight is the sample weight.
	FieldWeight = "weight"

	// FieldMinusLogPost is the negative log-posterior, or in general the
	// total negative log-probability.
	FieldMinusLogPost = "minuslogpost"

	// FieldMinusLogPrior is the negative log-prior.
	FieldMinusLogPrior = "minuslogprior"

	// FieldChi2 is chi^2 = -2 * loglike. Not always normalized.
	FieldChi2 = "chi2"
)

// Prior1DName is the name given to the product of the one-dimensional priors.
const Prior1DName = "0"

// Separators.
const (
	// Separator joins fields in parameter names. It should not be used
	// anywhere else, e.g. inside a parameter name.
	Separator = "__"

	// SeparatorFiles joins fields in output file names.
	SeparatorFiles = "."
)
