package table

import (
	"bytes"
	"testing"

	"github.com/imagespy/driverimages/driverimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	b := &bytes.Buffer{}
	err := Print(b, []driverimage.DriverImage{
		{
			CreationDate: "2024-06-11T12:00:00.000Z",
			ImageID:      "ami-1",
			Name:         "cpp-driver-rocky9-64-1",
			Snapshots:    []driverimage.Snapshot{{SnapshotID: "snap-1", VolumeID: "vol-1"}, {SnapshotID: "snap-2", VolumeID: "vol-2"}},
		},
		{CreationDate: "2024-06-12T12:00:00.000Z", ImageID: "ami-22", Name: "cpp-driver-rocky9-64-2"},
	})
	require.NoError(t, err)

	expected := "" +
		"name                    image_id  creation_date             snapshots\n" +
		"cpp-driver-rocky9-64-1  ami-1     2024-06-11T12:00:00.000Z  snap-1 (volume: vol-1),snap-2 (volume: vol-2)\n" +
		"cpp-driver-rocky9-64-2  ami-22    2024-06-12T12:00:00.000Z  \n"
	assert.Equal(t, expected, b.String())
}

func TestPrint_NoImages(t *testing.T) {
	b := &bytes.Buffer{}
	require.NoError(t, Print(b, nil))
	assert.Equal(t, "name  image_id  creation_date  snapshots\n", b.String())
}

func TestPrintOne(t *testing.T) {
	b := &bytes.Buffer{}
	err := PrintOne(b, driverimage.DriverImage{
		CreationDate: "2024-06-11T12:00:00.000Z",
		ImageID:      "ami-1",
		Name:         "cpp-driver-rocky9-64-1",
		Snapshots:    []driverimage.Snapshot{{SnapshotID: "snap-1", VolumeID: "vol-1"}, {SnapshotID: "snap-2", VolumeID: "vol-2"}},
	})
	require.NoError(t, err)

	expected := "" +
		"name:           cpp-driver-rocky9-64-1\n" +
		"image_id:       ami-1\n" +
		"creation_date:  2024-06-11T12:00:00.000Z\n" +
		"lang:           Cpp\n" +
		"platform:       Rocky9\n" +
		"build:          1\n" +
		"snapshots:      snap-1 (volume: vol-1)\n" +
		"                snap-2 (volume: vol-2)\n"
	assert.Equal(t, expected, b.String())
}

func TestPrintOne_UnknownName(t *testing.T) {
	b := &bytes.Buffer{}
	require.NoError(t, PrintOne(b, driverimage.DriverImage{CreationDate: "2024", ImageID: "ami-1", Name: "base-image"}))

	expected := "" +
		"name:           base-image\n" +
		"image_id:       ami-1\n" +
		"creation_date:  2024\n" +
		"snapshots:      -\n"
	assert.Equal(t, expected, b.String())
}
