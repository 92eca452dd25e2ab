/*
This is a simple program reading n bytes from a file and copying them to the stdout
to illustrate the most basic usage of the argstore package.

There are two arguments read from the store: input path (-in/--in) and output length (-n/--n).
The -in argument defaults to the standard input, the -n argument is optional and defaults to the value -1.
-debug prints the parsed arguments, -version prints the build version.
*/

package main

import (
	"io"
	"os"

	"github.com/matusvla/argstore"
	"github.com/matusvla/argstore/example"
)

func main() {
	s := argstore.FromOS()
	logger := example.NewLogger(s, "basic")

	var v example.BuildVersionFlag
	if err := argstore.Load(s, &v); err != nil {
		logger.Fatal("error while loading the cli arguments", "err", err)
	}

	inputPath := s.String("-in", "")
	outputLen := s.Int("-n", -1)

	// The program "logic"
	in := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			logger.Fatal("error while opening the input file", "path", inputPath, "err", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Fatal("error closing the input file", "err", err)
			}
		}()
		in = f
	}

	if outputLen == -1 {
		if _, err := io.Copy(os.Stdout, in); err != nil {
			logger.Fatal("error writing to stdout", "err", err)
		}
		return
	}

	if _, err := io.CopyN(os.Stdout, in, outputLen); err != nil && err != io.EOF {
		logger.Fatal("error writing to stdout", "err", err)
	}
}
