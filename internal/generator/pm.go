package generator

import "fmt"

// GeneratorName is the external project generator invoked by "vueforge new".
const GeneratorName = "create-vue"

// generatorSpec is the package spec passed to the package manager's create
// command.
const generatorSpec = "vue@latest"

// Fixed package set installed into every scaffolded project.
var (
	RuntimePackages = []string{"pinia", "vuetify", "vee-validate", "yup", "axios"}
	DevPackages     = []string{"sass"}
)

// PackageManager abstracts the argv differences between npm, pnpm, and yarn.
type PackageManager interface {
	// Name returns the identifier used in config and manifests.
	Name() string
	// Bin returns the executable looked up on PATH.
	Bin() string
	// CreateArgs returns the argv (after Bin) that runs the project
	// generator for the given project name.
	CreateArgs(projectName string) []string
	// InstallArgs returns the argv (after Bin) that installs packages
	// into the current directory. A non-empty registry overrides the
	// package manager's default registry.
	InstallArgs(pkgs []string, dev bool, registry string) []string
}

// Dispatch returns the PackageManager implementation for the given name.
// An empty name selects npm.
func Dispatch(name string) (PackageManager, error) {
	switch name {
	case "npm", "":
		return npm{}, nil
	case "pnpm":
		return pnpm{}, nil
	case "yarn":
		return yarn{}, nil
	default:
		return nil, fmt.Errorf("unknown package manager %q: supported values are npm, pnpm, yarn", name)
	}
}

type npm struct{}

func (npm) Name() string { return "npm" }
func (npm) Bin() string  { return "npm" }

func (npm) CreateArgs(projectName string) []string {
	// The lone "--" forwards the remaining flags to create-vue itself.
	return []string{"create", generatorSpec, projectName, "--", "--default"}
}

func (npm) InstallArgs(pkgs []string, dev bool, registry string) []string {
	args := []string{"install"}
	if dev {
		args = append(args, "--save-dev")
	}
	if registry != "" {
		args = append(args, "--registry", registry)
	}
	return append(args, pkgs...)
}

type pnpm struct{}

func (pnpm) Name() string { return "pnpm" }
func (pnpm) Bin() string  { return "pnpm" }

func (pnpm) CreateArgs(projectName string) []string {
	return []string{"create", generatorSpec, projectName, "--default"}
}

func (pnpm) InstallArgs(pkgs []string, dev bool, registry string) []string {
	args := []string{"add"}
	if dev {
		args = append(args, "--save-dev")
	}
	if registry != "" {
		args = append(args, "--registry", registry)
	}
	return append(args, pkgs...)
}

type yarn struct{}

func (yarn) Name() string { return "yarn" }
func (yarn) Bin() string  { return "yarn" }

func (yarn) CreateArgs(projectName string) []string {
	return []string{"create", "vue", projectName, "--default"}
}

func (yarn) InstallArgs(pkgs []string, dev bool, registry string) []string {
	args := []string{"add"}
	if dev {
		args = append(args, "--dev")
	}
	if registry != "" {
		args = append(args, "--registry", registry)
	}
	return append(args, pkgs...)
}
