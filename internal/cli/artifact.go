package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Kotlin/kotlin-numpy/internal/platform"
)

var (
	artifactModule   string
	artifactPlatform string
)

func init() {
	artifactCmd.PersistentFlags().StringVar(&artifactModule, "module", "", "Native module base name (default from manifest)")
	artifactNameCmd.Flags().StringVar(&artifactPlatform, "platform", "", "Target platform: windows, linux, macos (default host)")
	artifactCmd.AddCommand(artifactNameCmd)
	artifactCmd.AddCommand(artifactInstallCmd)
	rootCmd.AddCommand(artifactCmd)
}

var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Name or install the built native library",
}

var artifactNameCmd = &cobra.Command{
	Use:   "name <generic-output>",
	Short: "Print the platform-idiomatic name for a build output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := artifactModuleName()
		if err != nil {
			return err
		}
		p, err := artifactTarget(artifactPlatform)
		if err != nil {
			return err
		}

		name, err := platform.ArtifactName(args[0], module, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

var artifactInstallCmd = &cobra.Command{
	Use:   "install <generic-output>",
	Short: "Copy a build output to its platform-idiomatic name",
	Long: `Copy the generic build output next to itself under the name the JVM loader
expects (libktnumpy.so, libktnumpy.dylib, or ktnumpy.dll) and make it
executable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := artifactModuleName()
		if err != nil {
			return err
		}
		p, err := artifactTarget("")
		if err != nil {
			return err
		}

		dst, err := platform.InstallArtifact(appFs, args[0], module, p)
		if err != nil {
			return err
		}
		logger.Debug("installed artifact", "from", args[0], "to", dst)
		fmt.Fprintln(cmd.OutOrStdout(), dst)
		return nil
	},
}

func artifactModuleName() (string, error) {
	s, err := loadSettings(overrides{module: artifactModule})
	if err != nil {
		return "", err
	}
	return s.options.ModuleName, nil
}

// artifactTarget parses an explicit platform name, or detects the host.
func artifactTarget(name string) (platform.Platform, error) {
	if name != "" {
		return platform.Parse(name)
	}
	return platform.Detect(runtime.GOOS)
}
