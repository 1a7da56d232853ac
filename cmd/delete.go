package cmd

import (
	"context"
	"fmt"

	"github.com/imagespy/driverimages/aggregate"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var deleteImageID string

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Deregisters an image and deletes its snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newCatalog(a.settings)
			if err != nil {
				return errors.Wrap(err, "creating AWS session")
			}

			image, err := a.aggregator(c).ByID(cmd.Context(), deleteImageID)
			if err != nil {
				if errors.Cause(err) == aggregate.ErrNotFound {
					return err
				}

				return errors.Wrapf(err, "error retrieving image %s", deleteImageID)
			}

			log.Infof("deleting image with ID %s (name: %s, snapshots: %s)", image.ImageID, image.Name, image.SnapshotsString())
			ctx, cancel := context.WithTimeout(cmd.Context(), a.settings.Timeout)
			defer cancel()
			ok, err := c.Deregister(ctx, image.ImageID)
			if err != nil {
				log.Errorf("error deleting image: %s", err)
				return errors.Wrap(err, "error deregistering image")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Result of image deletion: %t\n", ok)
			return nil
		},
	}

	deleteCmd.Flags().StringVarP(&deleteImageID, "image-id", "i", "", "ID of the image to delete")
	err := deleteCmd.MarkFlagRequired("image-id")
	if err != nil {
		panic(err)
	}

	return deleteCmd
}
