// Command gensc writes a random exact set covering instance in the JSON format read by solve_sc,
// and optionally its solution, as the result line solve_sc would print.
package main

import (
	"bytes"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/exactcover/cover"
	"github.com/crillab/exactcover/engine"
	"github.com/crillab/exactcover/ilp"
	"github.com/crillab/exactcover/setcover"
)

type options struct {
	m      int
	n      int
	scale  float64
	seed   int64
	output   string
	solution string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("gensc failed")
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:   "gensc -m SUBSETS -n ELEMENTS",
		Short: "Writes a random exact set covering instance",
		Long: `Writes a random exact set covering instance made of m distinct, non-empty subsets
of n elements. The instance may be infeasible. The same arguments always give the same instance.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(stdout)
		},
	}

	cmd.Flags().IntVarP(&o.m, "subsets", "m", 0, "number of subsets")
	cmd.Flags().IntVarP(&o.n, "elements", "n", 0, "number of elements to cover")
	cmd.Flags().Float64Var(&o.scale, "scale", 1, "costs lie between scale and 10*scale")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "seed for the random generator")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "file the instance is written to, instead of stdout")
	cmd.Flags().StringVar(&o.solution, "solution", "", "file the solution of the instance is written to, as a solve_sc result line")

	return cmd
}

func (o *options) run(stdout io.Writer) error {
	ins, err := cover.Random(o.m, o.n, o.scale, o.seed)
	if err != nil {
		return err
	}
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(ins, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode instance")
	}
	b = append(b, '\n')
	if o.output == "" {
		if _, err := stdout.Write(b); err != nil {
			return errors.Wrap(err, "could not write instance")
		}
	} else if err := os.WriteFile(o.output, b, 0o644); err != nil {
		return errors.Wrapf(err, "could not write %s", o.output)
	}
	if o.solution == "" {
		return nil
	}
	return o.writeSolution(ins)
}

// writeSolution solves ins with the default engine and writes the result line to o.solution.
func (o *options) writeSolution(ins *cover.Instance) error {
	factory, err := engine.Lookup(engine.PBName)
	if err != nil {
		return err
	}
	s := setcover.Solver{NewEngine: func() ilp.Engine { return factory(engine.DefaultOptions()) }}
	res, err := s.Solve(ins)
	if err != nil {
		return errors.Wrap(err, "could not solve instance")
	}
	var buf bytes.Buffer
	if err := setcover.Format(&buf, res); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(o.solution, buf.Bytes(), 0o644), "could not write %s", o.solution)
}
