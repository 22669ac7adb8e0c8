package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	var returnFields []string

	cmd := &cobra.Command{
		Use:   "update REFERENCE FIELD=VALUE...",
		Short: "Update an existing object",
		Long:  "Update the object identified by a WAPI reference returned from get or create.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connectorFromConfig()
			if err != nil {
				return err
			}

			payload, err := parseFields(args[1:])
			if err != nil {
				return err
			}

			result, err := conn.UpdateObject(cmd.Context(), args[0], payload, returnFields...)
			if err != nil {
				return fmt.Errorf("updating object: %w", err)
			}

			return renderResult(result)
		},
	}

	cmd.Flags().StringSliceVar(&returnFields, "return-fields", nil, "fields to return (comma-separated)")

	return cmd
}
