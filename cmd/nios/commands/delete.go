package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete REFERENCE",
		Short: "Delete an object",
		Long:  "Delete the object identified by a WAPI reference and print the removed reference.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connectorFromConfig()
			if err != nil {
				return err
			}

			result, err := conn.DeleteObject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("deleting object: %w", err)
			}

			return renderResult(result)
		},
	}
}
