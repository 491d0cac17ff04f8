package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kotlin/kotlin-numpy/internal/config"
	"github.com/Kotlin/kotlin-numpy/internal/doctor"
	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/manifest"
)

var doctorFlags overrides

func init() {
	doctorCmd.Flags().StringVar(&doctorFlags.python, "python", "", "Interpreter to check")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check every build precondition",
	Long: `Run every check a resolution pass needs (platform, interpreter and NumPy
versions, headers, JDK, C compiler) and report all problems at once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := manifestLocation()
		if err != nil {
			return err
		}
		s, err := loadSettings(doctorFlags)
		if errors.Is(err, manifest.ErrInvalid) {
			// The manifest check reports the issues; the other checks run on defaults.
			logger.Debug("ignoring invalid manifest", "err", err)
			s, err = mergeSettings(doctorFlags, &manifest.Project{}, config.Get, filepath.Dir(path))
		}
		if err != nil {
			return err
		}

		snap, probeErr := environ.Capture(cmd.Context(), environ.CaptureOptions{
			Python: s.python,
			Query:  queryInterpreter,
		})
		if probeErr != nil {
			logger.Debug("interpreter probe failed", "err", probeErr)
			snap = environ.Host()
		}

		report := doctor.Run(doctor.Inputs{
			FS:       appFs,
			Snapshot: snap,
			ProbeErr: probeErr,
			Options:  s.options,

			ManifestPath: path,
		})
		doctor.Render(cmd.OutOrStdout(), report)

		if report.Failed() {
			return fmt.Errorf("%d check(s) failed", report.Count(doctor.StatusFail))
		}
		return nil
	},
}
