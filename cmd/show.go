package cmd

import (
	"github.com/imagespy/driverimages/aggregate"
	"github.com/imagespy/driverimages/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var showImageID string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Shows a single image and its snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newCatalog(a.settings)
			if err != nil {
				return errors.Wrap(err, "creating AWS session")
			}

			image, err := a.aggregator(c).ByID(cmd.Context(), showImageID)
			if err != nil {
				if errors.Cause(err) == aggregate.ErrNotFound {
					return err
				}

				return errors.Wrapf(err, "error retrieving image %s", showImageID)
			}

			return table.PrintOne(cmd.OutOrStdout(), image)
		},
	}

	showCmd.Flags().StringVarP(&showImageID, "image-id", "i", "", "ID of the image to show")
	err := showCmd.MarkFlagRequired("image-id")
	if err != nil {
		panic(err)
	}

	return showCmd
}
