package aggregate

import (
	"context"
	"sync"
	"time"

	"github.com/Jeffail/tunny"
	"github.com/imagespy/driverimages/catalog"
	"github.com/imagespy/driverimages/driverimage"
	"github.com/imagespy/driverimages/selector"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/push"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds every single call to the catalog.
	DefaultTimeout = 30 * time.Second
	// DefaultWorkers is the number of snapshot lookups in flight at once.
	DefaultWorkers = 8
)

var (
	// ErrNotFound is returned by ByID if the catalog knows no image with the id.
	ErrNotFound = errors.New("image does not exist")
	// ErrMalformedRecord is returned if the catalog returned an image without id, name or creation date.
	ErrMalformedRecord = errors.New("malformed image record")
)

// Opts configure an Aggregator. Zero values select the defaults.
type Opts struct {
	PushgatewayURL string
	Timeout        time.Duration
	Workers        int
}

// Aggregator turns catalog images into DriverImages.
type Aggregator struct {
	catalog      catalog.Catalog
	dispatchFunc func(ctx context.Context, jobs []*job)
	metrics      *metrics
	promPusher   *push.Pusher
	timeout      time.Duration
	workers      int
}

// NewAggregator returns an Aggregator reading from c.
func NewAggregator(c catalog.Catalog, o Opts) *Aggregator {
	a := &Aggregator{
		catalog: c,
		metrics: newMetrics(),
		timeout: o.Timeout,
		workers: o.Workers,
	}
	if a.timeout <= 0 {
		a.timeout = DefaultTimeout
	}

	if a.workers <= 0 {
		a.workers = DefaultWorkers
	}

	if o.PushgatewayURL != "" {
		a.promPusher = a.metrics.pusher(o.PushgatewayURL)
	}

	a.dispatchFunc = a.dispatch
	return a
}

// BySelection returns all driver images matching sel in catalog order.
func (a *Aggregator) BySelection(ctx context.Context, sel selector.Selection) ([]driverimage.DriverImage, error) {
	pattern := selector.FilterExpression(sel)
	log.Debugf("retrieving driver images by lang and platform, filter string: %s", pattern)
	return a.aggregate(ctx, catalog.NameFilter(pattern))
}

// ByID returns the driver image with the given id or ErrNotFound.
func (a *Aggregator) ByID(ctx context.Context, imageID string) (driverimage.DriverImage, error) {
	log.Debugf("retrieving driver image by image ID: %s", imageID)
	images, err := a.aggregate(ctx, catalog.ImageIDFilter(imageID))
	if err != nil {
		return driverimage.DriverImage{}, err
	}

	if len(images) == 0 {
		return driverimage.DriverImage{}, errors.Wrapf(ErrNotFound, "no image found for ID %s", imageID)
	}

	return images[0], nil
}

func (a *Aggregator) aggregate(ctx context.Context, f catalog.Filter) ([]driverimage.DriverImage, error) {
	start := time.Now()
	a.metrics.reset()
	defer a.finish(start)

	searchCtx, cancel := context.WithTimeout(ctx, a.timeout)
	raws, err := a.catalog.Images(searchCtx, f)
	cancel()
	if err != nil {
		return nil, err
	}

	jobs := make([]*job, 0, len(raws))
	for pos, raw := range raws {
		j, err := newJob(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "image %d returned for %s", pos, f)
		}

		a.metrics.droppedMappings.Add(float64(j.droppedMappings))
		jobs = append(jobs, j)
	}

	if len(jobs) > 0 {
		a.dispatchFunc(ctx, jobs)
	}

	images := make([]driverimage.DriverImage, 0, len(jobs))
	for _, j := range jobs {
		images = append(images, j.driverImage())
	}

	a.metrics.images.Set(float64(len(images)))
	return images, nil
}

func (a *Aggregator) finish(start time.Time) {
	a.metrics.duration.Set(time.Since(start).Seconds())
	a.metrics.completionTime.SetToCurrentTime()
	if a.promPusher != nil {
		err := a.promPusher.Add()
		if err != nil {
			log.Warnf("unable to push metrics: %s", err)
		}
	}
}

// dispatch resolves the snapshots of all jobs through a pool of at most
// a.workers workers and returns once every job is done.
func (a *Aggregator) dispatch(ctx context.Context, jobs []*job) {
	workers := a.workers
	if len(jobs) < workers {
		workers = len(jobs)
	}

	pool := tunny.NewFunc(workers, func(payload interface{}) interface{} {
		j, ok := payload.(*job)
		if !ok {
			log.Error("unable to cast payload to *job")
			return nil
		}

		a.resolveSnapshots(ctx, j)
		return nil
	})
	defer pool.Close()

	wg := &sync.WaitGroup{}
	wg.Add(len(jobs))
	for _, j := range jobs {
		payload := j
		go func() {
			pool.Process(payload)
			wg.Done()
		}()
	}

	wg.Wait()
}

func (a *Aggregator) resolveSnapshots(ctx context.Context, j *job) {
	if len(j.snapshotIDs) == 0 {
		log.Warnf("no snapshot IDs for image %s, skipping snapshot lookup", j.imageID)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	records, err := a.catalog.Snapshots(ctx, j.snapshotIDs)
	if err != nil {
		log.Warnf("error retrieving snapshots for image with ID %s, returning empty list: %s", j.imageID, err)
		a.metrics.lookupFailures.Inc()
		return
	}

	for _, r := range records {
		if r.SnapshotID == nil || *r.SnapshotID == "" || r.VolumeID == nil || *r.VolumeID == "" {
			log.Warnf("dropping snapshot record of image %s without snapshot or volume ID", j.imageID)
			continue
		}

		j.snapshots = append(j.snapshots, driverimage.Snapshot{SnapshotID: *r.SnapshotID, VolumeID: *r.VolumeID})
	}
}
