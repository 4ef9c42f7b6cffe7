// Package cli wires the pure utilities to a kong command tree that reads
// JSON or YAML documents and writes results to stdout. Logs go to stderr.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/fnkit/internal/config"
	"github.com/on-the-ground/fnkit/internal/log"
)

// Version is reported by the version command.
const Version = "0.1.0"

const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitMismatch = 3
)

// ErrMismatch is returned by leaves --exit-code when some document does not match.
var ErrMismatch = errors.New("leaves do not match")

// CLI is the fnkit command tree.
type CLI struct {
	Config config.Config `embed:""`

	Flatten FlattenCmd `cmd:"" help:"Flatten nested sequences into a single sequence."`
	Leaves  LeavesCmd  `cmd:"" help:"Report whether every leaf of a keyed structure is the same value."`
	Reverse ReverseCmd `cmd:"" help:"Reverse strings rune by rune."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Env is bound into every command's Run method.
type Env struct {
	Config config.Config
	Stdin  io.Reader
	Stdout io.Writer
	Logger *zap.Logger
}

type exitSignal int

// Run parses args, executes the selected command and returns the process
// exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code = int(sig)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("fnkit"),
		kong.Description("Functional utilities over JSON and YAML documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitSignal(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "fnkit: %v\n", err)
		return ExitFailure
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "fnkit: %v\n", err)
		return ExitUsage
	}
	if err := cli.Config.Validate(); err != nil {
		fmt.Fprintf(stderr, "fnkit: %v\n", err)
		return ExitUsage
	}

	logger := log.New(stderr, cli.Config.LogOptions()).With(zap.String("run_id", uuid.NewString()))
	defer log.Sync(logger)

	start := time.Now()
	err = kctx.Run(&Env{
		Config: cli.Config,
		Stdin:  stdin,
		Stdout: stdout,
		Logger: logger,
	})
	span := timespan.BetweenTimes(start, time.Now())
	logger.Debug("command finished",
		zap.String("command", kctx.Command()),
		zap.Stringer("span", span),
		zap.Duration("elapsed", span.Duration()),
	)

	if err != nil {
		log.Log(logger, log.LogPayload{
			Level:   log.LogError,
			Message: "command failed",
			Fields:  map[string]interface{}{"command": kctx.Command(), "error": err.Error()},
		})
	}
	return ExitCode(err)
}

// ExitCode maps a command error to an exit status. Mismatches alone yield
// ExitMismatch; any other failure yields ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, e := range multierr.Errors(err) {
		if !errors.Is(e, ErrMismatch) {
			return ExitFailure
		}
	}
	return ExitMismatch
}
