package catalog

// RawImage is an image record as returned by the provider. Pointer fields
// are nil when the provider omitted them.
type RawImage struct {
	BlockDeviceMappings []BlockDeviceMapping
	CreationDate        *string
	ImageID             *string
	Name                *string
}

// BlockDeviceMapping is a device of an image. EBS is nil for mappings that
// are not backed by a volume, such as instance store devices.
type BlockDeviceMapping struct {
	DeviceName string
	EBS        *EBS
}

// EBS describes the volume backing a BlockDeviceMapping.
type EBS struct {
	SnapshotID *string
}

// SnapshotRecord is a snapshot as returned by the provider.
type SnapshotRecord struct {
	SnapshotID *string
	VolumeID   *string
}
