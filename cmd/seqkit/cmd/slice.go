package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
	"github.com/msto63/seqkit/foundation/utils/seqx"
)

func newSliceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slice START:STOP[:STEP] [HAYSTACK]",
		Short: "Apply a Python slice expression",
		Long: `Applies a slice expression with Python semantics. Every member is
optional; negative values count from the end. Put "--" before an
expression that starts with a minus sign.`,
		Example: `  seqkit slice ::-1 "hello"          # "olleh"
  seqkit slice -- -3: "hello"         # "llo"
  seqkit --wide slice 1:3 "h€llo"     # "€l"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := seqx.ParseSliceSpec(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(args[1:])
			if err != nil {
				return err
			}

			timer := a.logger.StartTimer("slice").WithField("spec", spec.String())
			rng := spec.Indices(s.length())
			result := s.slice(spec)
			timer.WithField("selected", rng.Len()).Stop()

			a.printQuoted(result)
			return nil
		},
	}
}

func newAtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "at INDEX [HAYSTACK]",
		Short:   "Print the code unit at INDEX",
		Example: `  seqkit at -- -1 "hello"             # 111`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "at", args[0], "an integer index")
			}
			s, err := a.open(args[1:])
			if err != nil {
				return err
			}

			unit, err := s.at(i)
			if err != nil {
				return err
			}
			a.printf("%d\n", unit)
			return nil
		},
	}
}
