package config

// Config represents the application configuration for a batch tesseroid
// gravity computation run.
type Config struct {
	App struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
	} `mapstructure:"app"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
	Compute struct {
		ModelFile       string  `mapstructure:"model_file"`
		RatioPotential  float64 `mapstructure:"ratio_potential"`
		RatioAttraction float64 `mapstructure:"ratio_attraction"`
		RatioGradient   float64 `mapstructure:"ratio_gradient"`
		NJobs           int     `mapstructure:"njobs"`
		StackMax        int     `mapstructure:"stack_max"`
	} `mapstructure:"compute"`
}
