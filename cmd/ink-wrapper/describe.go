package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/alfellati/ink-wrapper/internal/analyze"
	"github.com/alfellati/ink-wrapper/internal/driver"
)

var describeCmd = &cobra.Command{
	Use:   "describe [flags]",
	Short: "Summarize the callable surface of a contract",
	Long:  `Describe parses and analyzes contract metadata and prints its constructors, messages and events without generating code`,
	Args:  cobra.NoArgs,
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().StringP("metadata", "m", "", "path to the contract metadata JSON")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	metadataPath, err := cmd.Flags().GetString("metadata")
	if err != nil {
		return fmt.Errorf("failed to get metadata flag: %w", err)
	}
	if metadataPath == "" {
		m, found, err := loadManifest("")
		if err != nil {
			return err
		}
		if found {
			metadataPath = m.resolve(m.Config.Contract.Metadata)
		}
	}
	if metadataPath == "" {
		return errors.New(noManifestMessage)
	}

	res, err := driver.Describe(metadataPath)
	if err != nil {
		reportError(cmd, err)
		return err
	}

	renderDescribe(cmd.OutOrStdout(), res, useColor(cmd, os.Stdout))
	return nil
}

var (
	describeTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	describeSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	describeSelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	describeMutStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	describeReadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	describeDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// painter красит строки только когда цвет включён
type painter struct {
	on bool
}

func (p painter) apply(st lipgloss.Style, s string) string {
	if !p.on {
		return s
	}
	return st.Render(s)
}

const describeLabelWidth = 28

func renderDescribe(out io.Writer, res *driver.DescribeResult, colored bool) {
	p := painter{on: colored}
	unit := res.Unit

	title := unit.Contract.Name
	if unit.Contract.Version != "" {
		title += " " + unit.Contract.Version
	}
	if unit.Contract.Language != "" {
		title += " (" + unit.Contract.Language + ")"
	}
	fmt.Fprintln(out, p.apply(describeTitleStyle, title))
	if unit.HasHash {
		fmt.Fprintf(out, "  code hash %s\n", p.apply(describeDimStyle, fmt.Sprintf("0x%x", unit.Hash)))
	}

	if len(unit.Constructors) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.apply(describeSectionStyle, "constructors"))
		for i := range unit.Constructors {
			renderMethod(out, p, &unit.Constructors[i])
		}
	}

	if len(unit.Ungrouped) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.apply(describeSectionStyle, "messages"))
		for i := range unit.Ungrouped {
			renderMethod(out, p, &unit.Ungrouped[i])
		}
	}
	for _, g := range unit.Groups {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.apply(describeSectionStyle, g.Name))
		for i := range g.Methods {
			renderMethod(out, p, &g.Methods[i])
		}
	}

	if len(unit.Events) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.apply(describeSectionStyle, "events"))
		for _, ev := range unit.Events {
			fields := "fields"
			if len(ev.Fields) == 1 {
				fields = "field"
			}
			fmt.Fprintf(out, "  %d %s %s\n", ev.Discriminant,
				padLabel(ev.Label, describeLabelWidth-2),
				p.apply(describeDimStyle, fmt.Sprintf("(%d %s)", len(ev.Fields), fields)))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "types: %d resolved, %d declared\n",
		unit.Types.Len(), len(unit.Types.DeclOrder()))
}

func renderMethod(out io.Writer, p painter, m *analyze.Method) {
	flags := make([]string, 0, 2)
	if m.Mutates {
		flags = append(flags, p.apply(describeMutStyle, "mut"))
	} else {
		flags = append(flags, p.apply(describeReadStyle, "read"))
	}
	if m.Payable {
		flags = append(flags, p.apply(describeSelStyle, "payable"))
	}
	fmt.Fprintf(out, "  %s %s  %s\n",
		padLabel(m.Label, describeLabelWidth),
		p.apply(describeSelStyle, m.Selector.Hex()),
		strings.Join(flags, " "))
}

// padLabel выравнивает колонку по ширине в терминальных ячейках
func padLabel(label string, width int) string {
	if runewidth.StringWidth(label) > width {
		return runewidth.Truncate(label, width, "...")
	}
	return label + strings.Repeat(" ", width-runewidth.StringWidth(label))
}
