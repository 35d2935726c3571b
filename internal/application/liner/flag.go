package liner

import (
	"strings"

	"github.com/es-debug/liner/internal/liner"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "LINER"
	defaultWorkers = 5
)

type cmdFlags struct {
	path        string
	output      string
	maxLineSize int
	workers     int
	verbose     bool
}

func defineFlags(flags *pflag.FlagSet) {
	flags.StringP("path", "p", "", "path to file, glob pattern or URL")
	flags.StringP("output", "o", "", "file for output (stdout when empty)")
	flags.Int("max-line-size", liner.DefaultMaxLineSize, "maximum line size in bytes")
	flags.Int("workers", defaultWorkers, "number of sources read at once")
	flags.BoolP("verbose", "v", false, "debug logging")
}

// bindFlags layers LINER_* environment variables under the command line flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlags(flags)
}

func readCMDFlags(v *viper.Viper) (cmdFlags, error) {
	path := v.GetString("path")
	if path == "" {
		return cmdFlags{}, liner.ErrEmptyPath{}
	}

	workers := v.GetInt("workers")
	if workers <= 0 {
		return cmdFlags{}, NewErrFlag("workers must be positive")
	}

	return cmdFlags{
		path:        path,
		output:      v.GetString("output"),
		maxLineSize: v.GetInt("max-line-size"),
		workers:     workers,
		verbose:     v.GetBool("verbose"),
	}, nil
}
