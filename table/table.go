package table

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/imagespy/driverimages/driverimage"
	"github.com/imagespy/driverimages/selector"
)

func newWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Print writes images as a borderless table.
func Print(w io.Writer, images []driverimage.DriverImage) error {
	tw := newWriter(w)
	fmt.Fprintln(tw, "name\timage_id\tcreation_date\tsnapshots")
	for _, i := range images {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.Name, i.ImageID, i.CreationDate, i.SnapshotsString())
	}

	return tw.Flush()
}

// PrintOne writes all details of a single image, one per line.
func PrintOne(w io.Writer, image driverimage.DriverImage) error {
	tw := newWriter(w)
	fmt.Fprintf(tw, "name:\t%s\n", image.Name)
	fmt.Fprintf(tw, "image_id:\t%s\n", image.ImageID)
	fmt.Fprintf(tw, "creation_date:\t%s\n", image.CreationDate)
	if n, err := selector.ParseImageName(image.Name); err == nil {
		fmt.Fprintf(tw, "lang:\t%s\n", n.Language)
		fmt.Fprintf(tw, "platform:\t%s\n", n.Platform)
		fmt.Fprintf(tw, "build:\t%s\n", n.Build)
	}

	if len(image.Snapshots) == 0 {
		fmt.Fprintln(tw, "snapshots:\t-")
	}

	for idx, s := range image.Snapshots {
		label := ""
		if idx == 0 {
			label = "snapshots:"
		}

		fmt.Fprintf(tw, "%s\t%s\n", label, s)
	}

	return tw.Flush()
}
