// Command solve_sc solves an exact set covering instance and prints the result on a single line.
//
// Usage:
//
//	solve_sc [options] (file.json|file.mps)
//
// Options can also be given in the environment, prefixed with SOLVE_SC_
// (SOLVE_SC_TIMEOUT=10s), or in a YAML file given with --config.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/crillab/exactcover/cover"
	"github.com/crillab/exactcover/engine"
	"github.com/crillab/exactcover/ilp"
	"github.com/crillab/exactcover/setcover"
)

const envPrefix = "SOLVE_SC"

// Exit codes.
const (
	exitOK      = 0 // A result was printed, whatever its status
	exitInput   = 1 // Invalid instance or command line
	exitFailure = 2 // Anything else
)

// A usageError is an invalid command line or configuration.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	configFile string
	engine     string
	timeout    time.Duration
	precision  int
	verify     bool
	debug      bool
	verbose    bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command with the given arguments and returns its exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	log := logger.WithField("run", uuid.New().String())
	cmd := newRootCmd(logger, log, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	log.WithError(err).Error("solve_sc failed")
	var usageErr *usageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprint(stderr, cmd.UsageString())
		return exitInput
	case cover.IsInputError(err):
		return exitInput
	default:
		return exitFailure
	}
}

func newRootCmd(logger *logrus.Logger, log logrus.FieldLogger, stdout io.Writer) *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:           "solve_sc [options] (file.json|file.mps)",
		Short:         "Finds a minimum-cost exact cover of a set covering instance",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.load(cmd.Flags()); err != nil {
				return &usageError{err: err}
			}
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			return o.run(log.WithField("instance", args[0]), args[0], stdout)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.Flags().StringVar(&o.configFile, "config", "", "YAML file holding default values for the other options")
	cmd.Flags().StringVar(&o.engine, "engine", engine.PBName, fmt.Sprintf("MILP engine (one of %s)", strings.Join(engine.Names(), ", ")))
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "time limit for the engine, 0 meaning no limit")
	cmd.Flags().IntVar(&o.precision, "precision", engine.DefaultPrecision, "significant digits of costs kept by engines working with integer costs")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "check the solution before printing it")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.Flags().BoolVar(&o.verbose, "verbose", false, "trace the engine's progress on stderr")

	return cmd
}

// load sets the options from the flags, the environment and the config file,
// in decreasing order of priority, and validates them.
func (o *options) load(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "could not bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "could not read config file %s", path)
		}
	}
	o.configFile = v.GetString("config")
	o.engine = v.GetString("engine")
	o.timeout = v.GetDuration("timeout")
	o.precision = v.GetInt("precision")
	o.verify = v.GetBool("verify")
	o.debug = v.GetBool("debug")
	o.verbose = v.GetBool("verbose")
	return o.validate()
}

func (o *options) validate() error {
	if _, err := engine.Lookup(o.engine); err != nil {
		return err
	}
	if o.timeout < 0 {
		return errors.Errorf("invalid timeout %v", o.timeout)
	}
	if o.precision < 1 || o.precision > 15 {
		return errors.Errorf("precision must be between 1 and 15, got %d", o.precision)
	}
	return nil
}

func (o *options) engineOptions(log logrus.FieldLogger) engine.Options {
	return engine.Options{
		Timeout:   o.timeout,
		Precision: o.precision,
		Verbose:   o.verbose,
		Logger:    log,
	}
}

func (o *options) run(log logrus.FieldLogger, path string, stdout io.Writer) error {
	factory, err := engine.Lookup(o.engine)
	if err != nil {
		return err
	}
	ins, err := cover.Load(path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"elements": ins.N(), "subsets": ins.M(), "engine": o.engine}).Debug("instance loaded")
	opts := o.engineOptions(log)
	s := setcover.Solver{
		NewEngine: func() ilp.Engine { return factory(opts) },
		Logger:    log,
	}
	res, err := o.solve(&s, ins)
	if err != nil {
		return err
	}
	if o.verify {
		if err := setcover.Verify(ins, res); err != nil {
			return errors.Wrap(err, "invalid solution")
		}
		log.Debug("solution verified")
	}
	return setcover.Format(stdout, res)
}

// solve runs s on ins. With --verbose, gophersat traces on os.Stdout, which must only
// hold the result line, so os.Stdout points to stderr during the search. It is left that way
// when the search was stopped by the time limit, since the search is still running and tracing.
func (o *options) solve(s *setcover.Solver, ins *cover.Instance) (setcover.Result, error) {
	if !o.verbose {
		return s.Solve(ins)
	}
	out := os.Stdout
	os.Stdout = os.Stderr
	res, err := s.Solve(ins)
	if err != nil || res.EngineStatus != ilp.StatusTimeLimit {
		os.Stdout = out
	}
	return res, err
}
