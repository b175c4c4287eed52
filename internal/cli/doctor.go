package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/audio-bench/abench/internal/config"
	"github.com/audio-bench/abench/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the abench environment",
	Long:  `Check that the external tools the report pipeline needs are installed and that the build's project-type registry is intact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(cmd.OutOrStdout())
		return nil
	},
}

func runDoctor(w io.Writer) {
	fmt.Fprintln(w, "Tool check:")
	checkBinary(w, config.Get(config.KeyGnuplotBin))
	if analyzer := config.Get(config.KeyAnalyzerBin); analyzer != "" {
		checkBinary(w, analyzer)
	} else {
		fmt.Fprintln(w, "  [INFO] no analyzer binary configured (tools.analyzer_bin)")
	}

	fmt.Fprintln(w, "Config check:")
	if _, err := os.Stat(config.FilePath()); err == nil {
		fmt.Fprintf(w, "  [ OK ] %s present\n", config.FilePath())
	} else {
		fmt.Fprintf(w, "  [INFO] %s not found (defaults in use)\n", config.FilePath())
	}

	fmt.Fprintln(w, "Registry check:")
	reg, err := project.LoadRegistry()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %d project type(s) registered\n", len(reg.Tags()))
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}
