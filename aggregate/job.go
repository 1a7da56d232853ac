package aggregate

import (
	"github.com/imagespy/driverimages/catalog"
	"github.com/imagespy/driverimages/driverimage"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type job struct {
	creationDate    string
	droppedMappings int
	imageID         string
	name            string
	snapshotIDs     []string
	snapshots       []driverimage.Snapshot
}

func newJob(raw catalog.RawImage) (*job, error) {
	if raw.ImageID == nil {
		return nil, errors.Wrap(ErrMalformedRecord, "missing image ID")
	}

	if raw.Name == nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "missing name of image %s", *raw.ImageID)
	}

	if raw.CreationDate == nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "missing creation date of image %s", *raw.ImageID)
	}

	j := &job{
		creationDate: *raw.CreationDate,
		imageID:      *raw.ImageID,
		name:         *raw.Name,
	}
	j.snapshotIDs, j.droppedMappings = validSnapshotIDs(raw)
	return j, nil
}

// validSnapshotIDs returns the snapshot ids of all EBS backed mappings of
// raw and the number of mappings it skipped.
func validSnapshotIDs(raw catalog.RawImage) ([]string, int) {
	var ids []string
	dropped := 0
	for _, m := range raw.BlockDeviceMappings {
		if m.EBS == nil {
			// Driver images are built with an EBS configuration, anything
			// else came in through the name pattern.
			log.Warnf("empty ebs entry for device %s of image %s", m.DeviceName, *raw.ImageID)
			dropped++
			continue
		}

		if m.EBS.SnapshotID == nil || *m.EBS.SnapshotID == "" {
			log.Warnf("empty snapshot ID for ebs entry of device %s of image %s", m.DeviceName, *raw.ImageID)
			dropped++
			continue
		}

		ids = append(ids, *m.EBS.SnapshotID)
	}

	return ids, dropped
}

func (j *job) driverImage() driverimage.DriverImage {
	return driverimage.DriverImage{
		CreationDate: j.creationDate,
		ImageID:      j.imageID,
		Name:         j.name,
		Snapshots:    j.snapshots,
	}
}
