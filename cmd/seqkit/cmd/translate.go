package cmd

import (
	"github.com/spf13/cobra"
)

func newTranslateCmd(a *app) *cobra.Command {
	var deletes string
	cmd := &cobra.Command{
		Use:   "translate FROM TO [HAYSTACK]",
		Short: "Map every unit of FROM to the unit at the same position in TO",
		Example: `  seqkit translate abc xyz "aabbcc"           # "xxyyzz"
  seqkit translate --delete - "" "" "a-b-c"    # "abc"`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args[2:])
			if err != nil {
				return err
			}
			result, err := s.translate(args[0], args[1], deletes)
			if err != nil {
				return err
			}
			a.printQuoted(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&deletes, "delete", "d", "", "units to delete")
	return cmd
}
