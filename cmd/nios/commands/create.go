package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	var returnFields []string

	cmd := &cobra.Command{
		Use:   "create OBJECT_TYPE FIELD=VALUE...",
		Short: "Create an object on the appliance",
		Long: `Create an object of a WAPI type and print its reference.

FIELD=VALUE arguments form the object body; values that parse as JSON
keep their type, everything else is sent as a string.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connectorFromConfig()
			if err != nil {
				return err
			}

			payload, err := parseFields(args[1:])
			if err != nil {
				return err
			}

			result, err := conn.CreateObject(cmd.Context(), args[0], payload, returnFields...)
			if err != nil {
				return fmt.Errorf("creating %q object: %w", args[0], err)
			}

			return renderResult(result)
		},
	}

	cmd.Flags().StringSliceVar(&returnFields, "return-fields", nil, "fields to return (comma-separated)")

	return cmd
}
