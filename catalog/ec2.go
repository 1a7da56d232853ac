package catalog

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// EC2API is the subset of the EC2 client the catalog needs. *ec2.EC2
// implements it.
type EC2API interface {
	DeleteSnapshotWithContext(ctx aws.Context, input *ec2.DeleteSnapshotInput, opts ...request.Option) (*ec2.DeleteSnapshotOutput, error)
	DeregisterImageWithContext(ctx aws.Context, input *ec2.DeregisterImageInput, opts ...request.Option) (*ec2.DeregisterImageOutput, error)
	DescribeImagesWithContext(ctx aws.Context, input *ec2.DescribeImagesInput, opts ...request.Option) (*ec2.DescribeImagesOutput, error)
	DescribeSnapshotsWithContext(ctx aws.Context, input *ec2.DescribeSnapshotsInput, opts ...request.Option) (*ec2.DescribeSnapshotsOutput, error)
}

// EC2 implements Catalog on top of AMIs and EBS snapshots.
type EC2 struct {
	client EC2API
	owners []string
}

// NewEC2 returns a Catalog backed by client. If owners is not empty only
// images owned by one of them are returned.
func NewEC2(client EC2API, owners []string) *EC2 {
	return &EC2{client: client, owners: owners}
}

func (e *EC2) Images(ctx context.Context, f Filter) ([]RawImage, error) {
	log.Debugf("describing images, filter: %s", f)
	input := &ec2.DescribeImagesInput{
		Filters: []*ec2.Filter{
			{Name: aws.String(string(f.Field)), Values: aws.StringSlice([]string{f.Value})},
		},
	}
	if len(e.owners) > 0 {
		input.Owners = aws.StringSlice(e.owners)
	}

	out, err := e.client.DescribeImagesWithContext(ctx, input)
	if err != nil {
		return nil, newQueryError("describe images with "+f.String(), err)
	}

	images := make([]RawImage, 0, len(out.Images))
	for _, i := range out.Images {
		images = append(images, toRawImage(i))
	}

	return images, nil
}

func (e *EC2) Snapshots(ctx context.Context, ids []string) ([]SnapshotRecord, error) {
	log.Debugf("describing snapshots, snapshot ids: %s", strings.Join(ids, ","))
	out, err := e.client.DescribeSnapshotsWithContext(ctx, &ec2.DescribeSnapshotsInput{
		SnapshotIds: aws.StringSlice(ids),
	})
	if err != nil {
		return nil, newQueryError("describe snapshots "+strings.Join(ids, ","), err)
	}

	records := make([]SnapshotRecord, 0, len(out.Snapshots))
	for _, s := range out.Snapshots {
		records = append(records, SnapshotRecord{SnapshotID: s.SnapshotId, VolumeID: s.VolumeId})
	}

	return records, nil
}

// Deregister deregisters the image and then deletes every snapshot its
// block device mappings referenced. It reports false without an error if
// the image is gone but one of its snapshots could not be deleted.
func (e *EC2) Deregister(ctx context.Context, imageID string) (bool, error) {
	images, err := e.Images(ctx, ImageIDFilter(imageID))
	if err != nil {
		return false, err
	}

	var snapshotIDs []string
	for _, i := range images {
		for _, m := range i.BlockDeviceMappings {
			if m.EBS != nil && aws.StringValue(m.EBS.SnapshotID) != "" {
				snapshotIDs = append(snapshotIDs, *m.EBS.SnapshotID)
			}
		}
	}

	log.Debugf("deregistering image %s (and deleting snapshots %s)", imageID, strings.Join(snapshotIDs, ","))
	_, err = e.client.DeregisterImageWithContext(ctx, &ec2.DeregisterImageInput{
		ImageId: aws.String(imageID),
	})
	if err != nil {
		return false, newQueryError("deregister image "+imageID, err)
	}

	ok := true
	for _, id := range snapshotIDs {
		_, err := e.client.DeleteSnapshotWithContext(ctx, &ec2.DeleteSnapshotInput{
			SnapshotId: aws.String(id),
		})
		if err != nil {
			log.Warnf("deleting snapshot %s of image %s: %s", id, imageID, err)
			ok = false
		}
	}

	return ok, nil
}

func toRawImage(i *ec2.Image) RawImage {
	raw := RawImage{
		CreationDate: i.CreationDate,
		ImageID:      i.ImageId,
		Name:         i.Name,
	}
	for _, m := range i.BlockDeviceMappings {
		mapping := BlockDeviceMapping{DeviceName: aws.StringValue(m.DeviceName)}
		if m.Ebs != nil {
			mapping.EBS = &EBS{SnapshotID: m.Ebs.SnapshotId}
		}

		raw.BlockDeviceMappings = append(raw.BlockDeviceMappings, mapping)
	}

	return raw
}
