package main

import (
	"fmt"
	"os"

	"github.com/alfellati/ink-wrapper/internal/analyze"
	"github.com/alfellati/ink-wrapper/internal/driver"
)

func main() {
	file := "testdata/flipper.json"
	res, err := driver.Describe(file)
	if err != nil {
		fmt.Printf("describe error: %v\n", err)
		os.Exit(1)
	}
	for _, m := range res.Unit.Constructors {
		dumpMethod("constructor", m)
	}
	for _, m := range res.Unit.Ungrouped {
		dumpMethod("message", m)
	}
	for _, g := range res.Unit.Groups {
		for _, m := range g.Methods {
			dumpMethod(g.Name, m)
		}
	}

	probe := "PSP22::transfer"
	fmt.Printf("probe %q computed=%s\n", probe, analyze.ComputeSelector(probe).Hex())
}

func dumpMethod(scope string, m analyze.Method) {
	computed := analyze.ComputeSelector(m.Label)
	note := ""
	if computed != m.Selector {
		note = " (declared override)"
	}
	fmt.Printf("%s %q assigned=%s computed=%s%s\n", scope, m.Label, m.Selector.Hex(), computed.Hex(), note)
}
