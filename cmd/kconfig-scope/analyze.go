package main

import (
	"fmt"

	"github.com/alevsk/kconfig-scope/internal/hardening"
	"github.com/alevsk/kconfig-scope/internal/ingestor"
	"github.com/spf13/cobra"
)

var (
	analyzeOpts = &ingestor.Options{}
	skipAudit   bool
	source      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [source]",
	Short: "Analyze a binary object for an embedded kernel configuration",
	Long: `Analyze a local file for a plaintext or image-embedded Linux kernel build
configuration. Positive findings are audited with the external checksec tool
against a curated set of hardening flags.

Examples:
  # Analyze a plaintext kernel config
  kconfig-scope analyze /boot/config-5.4.0

  # Analyze the configs.ko kernel module (IKCONFIG=m)
  kconfig-scope analyze ./configs.ko

  # Analyze a kernel image, identifying it explicitly
  kconfig-scope analyze ./vmlinuz --hint "Linux Kernel Version 5.4.0"

  # Skip the hardening audit when checksec is not installed
  kconfig-scope analyze ./configs.ko --skip-audit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source = args[0]

		if !skipAudit {
			// A missing auditor is a hard dependency misconfiguration,
			// surfaced once at startup rather than per object
			auditor, err := hardening.NewAuditor(cfg.Checksec.Path)
			if err != nil {
				return fmt.Errorf("%w (use --skip-audit to analyze without hardening checks)", err)
			}
			analyzeOpts.Auditor = auditor
		}

		ing := ingestor.New(analyzeOpts)
		result, err := ing.Ingest(cmd.Context(), source)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		if !result.Success {
			return fmt.Errorf("analysis failed: %v", result.Error)
		}

		fmt.Print(result.OutputFormatted)
		return nil
	},
}

func init() {

	// Add flags specific to analyze command
	flags := analyzeCmd.Flags()
	flags.StringVarP(&analyzeOpts.OutputFormat, "output", "o", "table", "output format (table, json, yaml)")
	flags.StringVar(&analyzeOpts.DeclaredMime, "mime", "",
		"declared MIME type of the object (default: sniffed from content)")
	flags.StringArrayVar(&analyzeOpts.ComponentHints, "hint", nil,
		"software component hint, repeatable (e.g. \"Linux Kernel Version 5.4.0\")")
	flags.BoolVar(&analyzeOpts.IncludeMetadata, "include-metadata", true,
		"include metadata in the output")
	flags.BoolVar(&skipAudit, "skip-audit", false,
		"skip the checksec hardening audit of extracted configurations")
}
