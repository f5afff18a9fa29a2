package cobaya

// Installation and container definitions.
const (
	// PackagesPathArg is the name of the packages path argument and input key.
	PackagesPathArg = KeyPackagesPath

	// PackagesPathEnv points to the external packages installation.
	PackagesPathEnv = "COBAYA_PACKAGES_PATH"

	// PackagesPathConfigFile stores the packages path in the user config dir.
	PackagesPathConfigFile = "config.yaml"

	// PackagesPathContainers is the packages path inside containers.
	PackagesPathContainers = "/cobaya_packages"

	// InstallSkipEnv lists components the installer should skip.
	InstallSkipEnv = "COBAYA_INSTALL_SKIP"

	// TestSkipEnv lists components the test suite should skip.
	TestSkipEnv = "COBAYA_TEST_SKIP"

	// ProductsPath is where containers keep run products.
	ProductsPath = "/products"

	// CodePath and DataPath are the subfolders of the packages path.
	CodePath = "code"
	DataPath = "data"

	CovmatsFile      = "covmats_database.pkl"
	RequirementsFile = "requirements.yaml"
	HelpFile         = "readme.md"
)

// PackagesPathArgPOSIX is the command line form of PackagesPathArg.
const PackagesPathArgPOSIX = "packages-path"

// OverheadTime is the approximate overhead per posterior evaluation, in
// seconds. Useful for blocking speeds.
const OverheadTime = 0.0003

// LineWidth is the line width for console printing.
const LineWidth = 120

// Physical constants.
const (
	// SpeedOfLightKmS is the speed of light in km/s.
	SpeedOfLightKmS = 299792.458

	// PlanckJS is Planck's constant in J s.
	PlanckJS = 6.626070040e-34

	// BoltzmannJK is Boltzmann's constant in J/K.
	BoltzmannJK = 1.38064852e-23
)
