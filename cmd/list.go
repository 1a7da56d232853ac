package cmd

import (
	"strings"

	"github.com/imagespy/driverimages/driverimage"
	ilog "github.com/imagespy/driverimages/log"
	"github.com/imagespy/driverimages/selector"
	"github.com/imagespy/driverimages/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type browseFunc func(images []driverimage.DriverImage) error

func newListCmd(a *app) *cobra.Command {
	var (
		listInteractive bool
		listLang        string
		listPlatform    string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists driver images by language and platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selector.NewSelection(listLang, listPlatform)
			if err != nil {
				return err
			}

			c, err := a.newCatalog(a.settings)
			if err != nil {
				return errors.Wrap(err, "creating AWS session")
			}

			images, err := a.aggregator(c).BySelection(cmd.Context(), sel)
			if err != nil {
				return errors.Wrapf(err, "error retrieving driver images for lang %s and platform %s", sel.LanguageString(), sel.PlatformString())
			}

			log.Infof("listing images for language %s, platform %s", sel.LanguageString(), sel.PlatformString())
			if listInteractive {
				restore := ilog.Silence()
				defer restore()
				return a.browse(images)
			}

			return table.Print(cmd.OutOrStdout(), images)
		},
	}

	listCmd.Flags().StringVarP(&listLang, "lang", "l", "", "language of the driver ("+selector.JoinValues(selector.Languages)+"), defaults to "+strings.ToLower(selector.DefaultLanguage.String()))
	listCmd.Flags().StringVarP(&listPlatform, "platform", "p", "", "platform of the driver ("+selector.JoinValues(selector.Platforms)+"), defaults to any")
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "browse the images in an interactive table")
	return listCmd
}
