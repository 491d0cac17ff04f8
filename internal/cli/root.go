package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kotlin/kotlin-numpy/internal/branding"
	"github.com/Kotlin/kotlin-numpy/internal/config"
	"github.com/Kotlin/kotlin-numpy/internal/environ"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var (
	verbose      bool
	cfgFile      string
	manifestPath string
)

var (
	// appFs backs every file the commands read or write.
	appFs afero.Fs = afero.NewOsFs()
	// queryInterpreter overrides the interpreter query; nil runs the interpreter.
	queryInterpreter environ.QueryFunc
	logger           = log.New(os.Stderr)
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each resolution step")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", branding.ManifestFile(), "Project manifest")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves the compiler and linker inputs for the ktnumpy native bridge
(JNI, Python, and NumPy headers, Python link flags) and names the built library
the way the host platform expects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd)
		if err := config.Load(cfgFile); err != nil {
			return err
		}
		return nil
	},
}

func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}

func versionString() string {
	if buildVersion == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}
