package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kotlin/kotlin-numpy/internal/manifest"
)

var (
	initForce  bool
	initModule string
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing manifest")
	initCmd.Flags().StringVar(&initModule, "module", "", "Native module base name")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default project manifest",
	Long: `Create a project manifest (the --manifest path) with the default module
name, interpreter, output directory, and include directories.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := manifest.Default()
		if initModule != "" {
			p.Module = initModule
		}
		if err := manifest.Write(appFs, manifestPath, p, initForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", manifestPath)
		return nil
	},
}
