package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NoneSince/construct/internal/construct"
)

var (
	inputPath  string
	outputPath string
	debug      bool
)

// newRootCmd builds the command tree. Required-flag validation is
// done by hand inside RunE rather than left to cobra's own
// MarkFlagRequired, because a missing or unrecognized flag must exit
// 0 with a one-line diagnostic (per SPEC_FULL.md §6), not cobra's
// default exit-2 usage dump.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "construct",
		Short:         "Compile Construct source into x86-64 NASM assembly",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input .con file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output .asm file")
	cmd.Flags().BoolVar(&debug, "debug", false, "trace each pipeline stage to stderr")
	// Unknown flags exit 0 with a one-line diagnostic, same as a
	// missing required flag (SPEC_FULL.md §6) — cobra's own parse
	// error is wrapped into flagExitError so main treats both alike.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &flagExitError{msg: err.Error()}
	})
	return cmd
}

// flagExitError marks an error that must exit the process with 0
// rather than 1, per the CLI's flag-error policy.
type flagExitError struct{ msg string }

func (e *flagExitError) Error() string { return e.msg }

func run(cmd *cobra.Command, args []string) error {
	if inputPath == "" || outputPath == "" {
		return &flagExitError{msg: "some flag(s) not set"}
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return &construct.CompileError{Kind: construct.IOError, Message: fmt.Sprintf("cannot read %s: %v", inputPath, err)}
	}

	opts := construct.Options{Debug: debug, Trace: os.Stderr}
	asm, err := construct.Compile(string(src), opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(asm), 0644); err != nil {
		return &construct.CompileError{Kind: construct.IOError, Message: fmt.Sprintf("cannot write %s: %v", outputPath, err)}
	}
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if _, ok := err.(*flagExitError); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
