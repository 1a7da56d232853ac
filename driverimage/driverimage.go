package driverimage

import (
	"fmt"
	"strings"
)

// Snapshot is an EBS snapshot backing a DriverImage.
type Snapshot struct {
	SnapshotID string
	VolumeID   string
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s (volume: %s)", s.SnapshotID, s.VolumeID)
}

// DriverImage is a machine image together with the snapshots that back it.
// An empty Snapshots slice means either that the image had no snapshot
// bearing block device mapping or that the snapshot lookup failed.
type DriverImage struct {
	CreationDate string
	ImageID      string
	Name         string
	Snapshots    []Snapshot
}

// SnapshotsString joins all snapshots with ",".
func (d DriverImage) SnapshotsString() string {
	parts := make([]string, 0, len(d.Snapshots))
	for _, s := range d.Snapshots {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, ",")
}

func (d DriverImage) String() string {
	return fmt.Sprintf("(image_id: %s, name: %s, creation_date: %s, snapshots: %s)", d.ImageID, d.Name, d.CreationDate, d.SnapshotsString())
}
