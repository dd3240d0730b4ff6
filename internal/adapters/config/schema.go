package config

// Leashfile represents the structure of the leash.yaml settings file.
type Leashfile struct {
	Tool            ToolDTO `yaml:"tool"`
	RequiredVersion string  `yaml:"required_version"`
	ExecutablePath  string  `yaml:"executable_path"`
	InterpreterPath string  `yaml:"interpreter_path"`
	InstallStrategy string  `yaml:"install_strategy"`
	Managed         *bool   `yaml:"managed"`
}

// ToolDTO describes the wrapped tool in the settings file.
type ToolDTO struct {
	Package string `yaml:"package"`
	Binary  string `yaml:"binary"`
	Module  string `yaml:"module"`
}
