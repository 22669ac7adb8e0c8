package commands

import (
	"fmt"

	"github.com/gridpoint-io/nios/pkg/wapi"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	var (
		returnFields []string
		extAttrPairs []string
		forceProxy   bool
	)

	cmd := &cobra.Command{
		Use:   "get OBJECT_TYPE [FIELD=VALUE...]",
		Short: "Retrieve objects from the appliance",
		Long: `Retrieve objects of a WAPI type, such as 'network' or 'record:host'.

Trailing FIELD=VALUE arguments become search parameters. On cloud-capable
appliances an empty result is retried once through the Grid Master.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connectorFromConfig()
			if err != nil {
				return err
			}

			payload, err := parseFields(args[1:])
			if err != nil {
				return err
			}

			extAttrs, err := parseExtAttrs(extAttrPairs)
			if err != nil {
				return err
			}

			result, err := conn.GetObject(cmd.Context(), args[0], payload, &wapi.GetOptions{
				ReturnFields: returnFields,
				ExtAttrs:     extAttrs,
				ForceProxy:   forceProxy,
			})
			if err != nil {
				return fmt.Errorf("getting %q objects: %w", args[0], err)
			}

			if result == nil {
				fmt.Println("No objects found")

				return nil
			}

			return renderResult(result)
		},
	}

	cmd.Flags().StringSliceVar(&returnFields, "return-fields", nil, "fields to return (comma-separated)")
	cmd.Flags().StringArrayVar(&extAttrPairs, "extattr", nil, "extensible attribute filter (NAME=VALUE, repeatable)")
	cmd.Flags().BoolVar(&forceProxy, "force-proxy", false, "route the request to the Grid Master")

	return cmd
}
