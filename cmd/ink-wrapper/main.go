package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ink-wrapper",
	Short: "Typed Go client generator for ink! contracts",
	Long:  `ink-wrapper compiles an ink! v4 metadata document into Go source for a strongly typed contract client`,
}

// main регистрирует подкоманды и глобальные флаги, затем запускает корневую команду.
// Ошибка выполнения завершает процесс с кодом 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor решает, красить ли вывод, идущий в f
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

var errorPrefixColor = color.New(color.FgRed, color.Bold)

// reportError печатает диагностику конвейера в stderr: error [MET1003]: ...
func reportError(cmd *cobra.Command, err error) {
	prefix := "error"
	if useColor(cmd, os.Stderr) {
		prefix = errorPrefixColor.Sprint(prefix)
	}
	if diag.CodeOf(err) != diag.UnknownCode {
		// diag.Error уже печатается как [MET1003]: сообщение
		fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
}
