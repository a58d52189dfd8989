package manifest

// FileName is the canonical manifest file name at a project root.
const FileName = "vueforge.yaml"

// Supported package manager values.
var ValidPackageManagers = []string{"npm", "pnpm", "yarn"}

// ProjectManifest is the parsed form of vueforge.yaml.
type ProjectManifest struct {
	Name           string            `yaml:"name" json:"name"`
	Version        string            `yaml:"version" json:"version"`
	CreatedBy      string            `yaml:"created_by,omitempty" json:"created_by,omitempty"`
	Generator      GeneratorInfo     `yaml:"generator" json:"generator"`
	PackageManager string            `yaml:"package_manager" json:"package_manager"`
	Packages       PackageSet        `yaml:"packages,omitempty" json:"packages,omitempty"`
	Conventions    *ConventionsBlock `yaml:"conventions,omitempty" json:"conventions,omitempty"`
}

// GeneratorInfo records the external generator that produced the project.
type GeneratorInfo struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// PackageSet lists the packages the scaffolder installed on top of the
// generator's own dependencies.
type PackageSet struct {
	Dependencies    []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	DevDependencies []string `yaml:"dev_dependencies,omitempty" json:"dev_dependencies,omitempty"`
}

// ConventionsBlock extends the naming conventions enforced by the
// pre-commit hook for this project.
type ConventionsBlock struct {
	// AllowedComponents adds component basenames exempt from PascalCase.
	AllowedComponents []string `yaml:"allowed_components,omitempty" json:"allowed_components,omitempty"`
	// Roots adds path prefixes (beyond src/) whose names are enforced.
	Roots []string `yaml:"roots,omitempty" json:"roots,omitempty"`
}
