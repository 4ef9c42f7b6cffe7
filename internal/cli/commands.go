package cli

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/fnkit/internal/document"
	"github.com/on-the-ground/fnkit/pure"
	"github.com/on-the-ground/fnkit/purefn"
	"github.com/on-the-ground/fnkit/shared/helper"
)

const stdinName = "-"

type FlattenCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Input documents. Reads stdin when omitted."`
}

func (c *FlattenCmd) Run(env *Env) error {
	return eachDocument(env, c.Files, func(source string, doc any) error {
		seq, err := helper.AsSequence(doc)
		if err != nil {
			return err
		}
		flat := pure.Flatten(seq)
		env.Logger.Debug("flattened document", zap.String("source", source), zap.Int("leaves", len(flat)))
		return document.Encode(env.Stdout, env.Config.Output, flat)
	})
}

type LeavesCmd struct {
	ExitCode bool     `help:"Exit with status 3 when some document does not match." name:"exit-code"`
	Files    []string `arg:"" optional:"" type:"existingfile" help:"Input documents. Reads stdin when omitted."`
}

func (c *LeavesCmd) Run(env *Env) error {
	mismatched := 0
	err := eachDocument(env, c.Files, func(source string, doc any) error {
		obj, err := helper.AsStructure(doc)
		if err != nil {
			return err
		}
		matching := pure.CheckMatchingLeaves(obj)
		if !matching {
			mismatched++
		}
		env.Logger.Debug("checked leaves",
			zap.String("source", source),
			zap.Bool("matching", matching),
			zap.Any("reference_leaf", pure.LeafOf(obj)),
		)
		return document.Encode(env.Stdout, env.Config.Output, matching)
	})
	if c.ExitCode && mismatched > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d document(s)", ErrMismatch, mismatched))
	}
	return err
}

type ReverseCmd struct {
	Words []string `arg:"" help:"Strings to reverse."`
}

func (c *ReverseCmd) Run(env *Env) error {
	reverse := purefn.TableizeI1O1(pure.Reverse, uint32(max(len(c.Words), 1)))
	for _, reversed := range pure.Map(c.Words, reverse) {
		if err := document.Encode(env.Stdout, env.Config.Output, reversed); err != nil {
			return err
		}
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *Env) error {
	_, err := fmt.Fprintf(env.Stdout, "fnkit version %s\n", Version)
	return err
}

// eachDocument decodes every source (stdin when files is empty) and applies
// fn to it. A failing source does not stop the others; failures are combined.
func eachDocument(env *Env, files []string, fn func(source string, doc any) error) error {
	if len(files) == 0 {
		files = []string{stdinName}
	}

	var errs error
	for _, source := range files {
		if err := processSource(env, source, fn); err != nil {
			env.Logger.Warn("document failed", zap.String("source", source), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", source, err))
		}
	}
	return errs
}

func processSource(env *Env, source string, fn func(string, any) error) error {
	if source == stdinName {
		doc, err := document.Decode(env.Stdin)
		if err != nil {
			return err
		}
		return fn(source, doc)
	}

	f, err := os.Open(source)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := document.Decode(f)
	if err != nil {
		return err
	}
	return fn(source, doc)
}
