package main

import (
	"fmt"
	"runtime"
	"sort"
)

// Version is the tool's release string, reported by --version.
const Version = "0.1.0"

// compiledFeatures tracks which supplemental decoder variants and optional
// subsystems were registered via init(), listed by --version.
var compiledFeatures []string

func registerFeature(name string) {
	compiledFeatures = append(compiledFeatures, name)
}

func printFeatures() {
	fmt.Printf("gbd %s\n", Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Compiled features:")

	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Printf("  %s\n", f)
	}
	if len(compiledFeatures) == 0 {
		fmt.Println("  (none)")
	}
}

func init() {
	registerFeature("ucode: F3DEX2")
	registerFeature("script: lua")
	registerFeature("clipboard: copy-report")
	registerFeature("interactive: raw-terminal stepping")
	registerFeature("texture-preview: terminal ANSI downsample")
}
