package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

// runPuzzle opens the optional input file argument (stdin otherwise) and
// hands it to solve. Results are buffered and only reach stdout when solve
// succeeds; a spinner is shown on an interactive stderr while solving a file.
func runPuzzle(args []string, solve func(io.Reader, io.Writer) error) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	r, closeInput, err := input.Open(name)
	if err != nil {
		return err
	}
	defer closeInput()
	log.Info("reading input", "source", sourceName(name))

	var out bytes.Buffer
	action := func() error {
		return solve(r, &out)
	}
	if name == "" || name == "-" {
		err = action()
	} else {
		err = ui.RunSpinner(os.Stderr, "Solving "+name, action)
	}
	if err != nil {
		return err
	}
	_, err = out.WriteTo(os.Stdout)
	return err
}

func sourceName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}
