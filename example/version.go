package example

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BuildVersion is set by LDFLAGS, e.g. -ldflags "-X github.com/matusvla/argstore/example.BuildVersion=v1.4.78".
var BuildVersion = "dev"

// BuildVersionFlag prints the build version and exits when loaded from a command line with -version (or --version).
type BuildVersionFlag struct {
	HasVersionPrintout bool `arg:"-version"`
}

func (bvf *BuildVersionFlag) Extend() error {
	if bvf.HasVersionPrintout {
		printVersion(os.Stdout, os.Args[0])
		os.Exit(0)
	}
	return nil
}

func printVersion(w io.Writer, program string) {
	fmt.Fprintf(w, "%s %s\n", filepath.Base(program), BuildVersion)
}
