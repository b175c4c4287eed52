package cli

import (
	"github.com/audio-bench/abench/internal/config"
	"github.com/audio-bench/abench/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportInput        string
	reportOutput       string
	reportScriptsDir   string
	reportSkipAnalysis bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Input WAV file to analyze (required)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", `Output directory for the report (default "output")`)
	reportCmd.Flags().StringVar(&reportScriptsDir, "scripts-dir", "", `Directory holding gnuplot scripts (default "gnuplot")`)
	reportCmd.Flags().BoolVar(&reportSkipAnalysis, "skip-analysis", false, "Skip analysis step (use existing data)")
	reportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an audio performance report from a WAV file",
	Long: `Coordinate external analysis and plotting tools into a markdown report.

Requires gnuplot on the search path. When tools.analyzer_bin is configured,
the analysis step runs that binary against the input file; otherwise the
analysis step is a placeholder awaiting the audio-bench C programs.

Examples:
  abench report -i capture.wav
  abench report -i capture.wav -o results/ --skip-analysis`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := reportOutput
		if outputDir == "" {
			outputDir = config.Get(config.KeyOutputDir)
		}
		scriptsDir := reportScriptsDir
		if scriptsDir == "" {
			scriptsDir = config.Get(config.KeyScriptsDir)
		}

		var analyzer report.Analyzer = report.NoopAnalyzer{}
		if bin := config.Get(config.KeyAnalyzerBin); bin != "" {
			analyzer = &report.ExternalAnalyzer{Bin: bin}
		}

		p := &report.Pipeline{
			Input:        reportInput,
			OutputDir:    outputDir,
			ScriptsDir:   scriptsDir,
			GnuplotBin:   config.Get(config.KeyGnuplotBin),
			SkipAnalysis: reportSkipAnalysis,
			Analyzer:     analyzer,
		}
		return p.Run(cmd.Context())
	},
}
