package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/audio-bench/abench/internal/project"
	"github.com/spf13/cobra"
)

var listTypes bool

func init() {
	projectCmd.Flags().BoolVar(&listTypes, "list-types", false, "List available project types and exit")
	rootCmd.AddCommand(projectCmd)
}

var projectCmd = &cobra.Command{
	Use:   "project <type> <dir>",
	Short: "Create an audio-bench project directory structure",
	Long: `Create an organized project directory for an audio-bench workflow.

The directory must not exist yet; it is created together with the
subdirectories and README.md the project type defines.

Examples:
  abench project device_report my_audio_test/
  abench project device_report ../projects/speaker_analysis/
  abench project --list-types`,
	Args: func(cmd *cobra.Command, args []string) error {
		if listTypes {
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("expected <type> and <dir> arguments, got %d", len(args))
		}

		// Reject unknown types before anything touches the filesystem.
		reg, err := project.LoadRegistry()
		if err != nil {
			return err
		}
		if _, ok := reg.Lookup(args[0]); !ok {
			return fmt.Errorf("unknown project type %q (available: %s)", args[0], strings.Join(reg.Tags(), ", "))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listTypes {
			return printTypes(cmd.OutOrStdout())
		}

		_, err := project.Create(args[0], args[1], os.Stdout, os.Stderr)
		return err
	},
}

func printTypes(w io.Writer) error {
	reg, err := project.LoadRegistry()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available project types:")
	for _, tag := range reg.Tags() {
		t, _ := reg.Lookup(tag)
		fmt.Fprintf(w, "  %-20s - %s\n", tag, t.Description)
	}
	return nil
}
