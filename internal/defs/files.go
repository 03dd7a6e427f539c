package defs

// Common file names used across the project.
const (
	// PackageJSON is the npm package manifest file.
	PackageJSON = "package.json"

	// EnvFile is the environment variable file written into the server package.
	EnvFile = ".env"

	// EnvExampleFile receives the same keys as EnvFile with empty values.
	EnvExampleFile = ".env.example"

	// ConfigYAML records the ProjectConfig of a generation run in the
	// generated project root, for later add-to-existing-project tooling.
	ConfigYAML = "stackforge.yaml"

	// TemplateSuffix marks files that are rendered instead of copied.
	// The suffix is stripped from the destination path.
	TemplateSuffix = ".tmpl"
)

// Dotfile aliases. Some publishing pipelines cannot ship literal dotfiles
// inside the template corpus, so templates carry an underscore alias that
// is mapped back to the real name on write.
const (
	GitignoreAlias = "_gitignore"
	NpmrcAlias     = "_npmrc"
	EnvAlias       = "_env"
)

// DotfileAliases maps each reserved alias basename to its real dotfile name.
var DotfileAliases = map[string]string{
	GitignoreAlias: ".gitignore",
	NpmrcAlias:     ".npmrc",
	EnvAlias:       ".env",
}
