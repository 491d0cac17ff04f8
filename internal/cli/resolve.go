package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kotlin/kotlin-numpy/internal/emit"
	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

var (
	resolveFlags overrides
	resolveOut   string
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveFlags.format, "format", "f", "", "Output format: json, yaml, toml, msgpack, flags")
	resolveCmd.Flags().StringVarP(&resolveOut, "out", "o", "", "Write the build config to a file instead of stdout")
	resolveCmd.Flags().StringVar(&resolveFlags.python, "python", "", "Interpreter to link against")
	resolveCmd.Flags().StringVar(&resolveFlags.module, "module", "", "Native module base name")
	resolveCmd.Flags().StringVar(&resolveFlags.output, "output", "", "Generic build output path")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve headers, link flags, and artifact name",
	Long: `Probe the interpreter, locate the JNI and NumPy headers, compute the Python
link flags, and print the resulting build configuration.

Resolution stops at the first missing input and reports what was expected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(resolveFlags)
		if err != nil {
			return err
		}

		snap, err := environ.Capture(cmd.Context(), environ.CaptureOptions{
			Python: s.python,
			Query:  queryInterpreter,
		})
		if err != nil {
			return err
		}

		cfg, err := resolve.NewResolver(appFs, logger).Resolve(snap, s.options)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := emit.Write(&buf, s.format, cfg); err != nil {
			return err
		}

		if resolveOut == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := afero.WriteFile(appFs, resolveOut, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing build config to %s: %w", resolveOut, err)
		}
		logger.Info("wrote build config", "path", resolveOut, "format", s.format)
		return nil
	},
}
