package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfellati/ink-wrapper/internal/driver"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate a typed Go client from contract metadata",
	Long:  `Generate compiles an ink! v4 metadata document into Go source for a contract client`,
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("metadata", "m", "", "path to the contract metadata JSON")
	generateCmd.Flags().String("wasm", "", "path to the contract bytecode; enables the upload routine")
	generateCmd.Flags().String("package", "", "package name for the generated code")
	generateCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Получаем флаги
	metadataPath, err := cmd.Flags().GetString("metadata")
	if err != nil {
		return fmt.Errorf("failed to get metadata flag: %w", err)
	}
	wasmPath, err := cmd.Flags().GetString("wasm")
	if err != nil {
		return fmt.Errorf("failed to get wasm flag: %w", err)
	}
	packageName, err := cmd.Flags().GetString("package")
	if err != nil {
		return fmt.Errorf("failed to get package flag: %w", err)
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	// Флаги важнее манифеста; манифест ищем только когда чего-то не хватает
	if metadataPath == "" || wasmPath == "" || packageName == "" || outPath == "" {
		m, found, err := loadManifest("")
		if err != nil {
			return err
		}
		if found {
			if metadataPath == "" {
				metadataPath = m.resolve(m.Config.Contract.Metadata)
			}
			if wasmPath == "" {
				wasmPath = m.resolve(m.Config.Contract.Wasm)
			}
			if packageName == "" {
				packageName = m.Config.Generate.Package
			}
			if outPath == "" {
				outPath = m.resolve(m.Config.Generate.Out)
			}
		}
	}
	if metadataPath == "" {
		return errors.New(noManifestMessage)
	}

	res, err := driver.Generate(driver.GenerateOptions{
		MetadataPath: metadataPath,
		WasmPath:     wasmPath,
		PackageName:  packageName,
		OutPath:      outPath,
	})
	if err != nil {
		reportError(cmd, err)
		return err
	}

	if res.OutPath == "" {
		fmt.Fprint(os.Stdout, res.Source)
		return nil
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "wrote %s\n", res.OutPath)
	}
	return nil
}
