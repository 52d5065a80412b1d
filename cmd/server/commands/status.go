package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"charterdesk/internal/dictionary"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <contract|verification> <code|label>",
		Short:   "Resolve an approval status to its label and colour",
		Args:    cobra.ExactArgs(2),
		Example: "  charterdesk status contract 2\n  charterdesk status verification 审批驳回",
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, ok := dictionary.TaxonomyByName(args[0])
			if !ok {
				return fmt.Errorf("unknown taxonomy %q", args[0])
			}
			info := taxonomy.ByLabel(args[1])
			if code, err := strconv.Atoi(args[1]); err == nil {
				info = taxonomy.ByCode(code)
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}
