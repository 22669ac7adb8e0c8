package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCallCommand creates the call command
func NewCallCommand() *cobra.Command {
	var returnFields []string

	cmd := &cobra.Command{
		Use:   "call FUNCTION REFERENCE [FIELD=VALUE...]",
		Short: "Invoke a WAPI function on an object",
		Long: `Invoke a WAPI function, such as 'next_available_ip', on the object
identified by a reference. FIELD=VALUE arguments form the function body.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connectorFromConfig()
			if err != nil {
				return err
			}

			payload, err := parseFields(args[2:])
			if err != nil {
				return err
			}

			result, err := conn.CallFunc(cmd.Context(), args[0], args[1], payload, returnFields...)
			if err != nil {
				return fmt.Errorf("calling function %q: %w", args[0], err)
			}

			return renderResult(result)
		},
	}

	cmd.Flags().StringSliceVar(&returnFields, "return-fields", nil, "fields to return (comma-separated)")

	return cmd
}
