// Package renderer drives the pixel loop: for every pixel, jitter several
// camera rays across the pixel footprint, average their traced radiance,
// and hand the result to an Image for tone mapping and output. Rows are
// partitioned into tiles and rendered concurrently, each tile owning a
// deterministic RNG stream so the result is reproducible regardless of
// how many workers ran it.
package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/dpryor42/gopathtracer/pkg/camera"
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
	"github.com/dpryor42/gopathtracer/pkg/integrator"
)

// Config bundles everything the renderer needs beyond the scene itself.
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	NumWorkers      int // 0 selects runtime.NumCPU()
	TileRows        int // rows per tile; 0 selects a sensible default
}

// Renderer renders a scene to an Image using the path tracing integrator.
type Renderer struct {
	Scene      geometry.Shape
	Lights     *geometry.HittableList
	Background core.Vec3
	Camera     *camera.Camera
	Config     Config
	integrator *integrator.PathTracingIntegrator
}

// New builds a renderer over scene with the given config.
func New(scene geometry.Shape, lights *geometry.HittableList, background core.Vec3, cam *camera.Camera, config Config) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileRows <= 0 {
		config.TileRows = 8
	}

	return &Renderer{
		Scene:      scene,
		Lights:     lights,
		Background: background,
		Camera:     cam,
		Config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
	}
}

// Render renders the full image, partitioning rows into tiles and
// rendering tiles concurrently up to Config.NumWorkers at a time. Each
// tile's worker stream is seeded from Config.Seed and the tile's starting
// row, so the output is identical no matter how the tiles are scheduled.
func (r *Renderer) Render(ctx context.Context) (*Image, error) {
	img := NewImage(r.Config.Width, r.Config.Height)

	group, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(r.Config.NumWorkers))

	for startRow := 0; startRow < r.Config.Height; startRow += r.Config.TileRows {
		startRow := startRow
		endRow := startRow + r.Config.TileRows
		if endRow > r.Config.Height {
			endRow = r.Config.Height
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}

		group.Go(func() error {
			defer sem.Release(1)
			sampler := core.NewSeededSampler(r.Config.Seed, startRow)
			r.renderRows(img, startRow, endRow, sampler)
			return ctx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// renderRows renders pixel rows [startRow, endRow) of img, reading top row
// first to match the image's row-major, top-to-bottom storage.
func (r *Renderer) renderRows(img *Image, startRow, endRow int, sampler core.Sampler) {
	width, height := r.Config.Width, r.Config.Height

	for row := startRow; row < endRow; row++ {
		j := height - 1 - row // camera's v coordinate increases bottom-to-top
		for col := 0; col < width; col++ {
			accum := core.Vec3{}

			for s := 0; s < r.Config.SamplesPerPixel; s++ {
				u := (float64(col) + sampler.Get1D()) / float64(width-1)
				v := (float64(j) + sampler.Get1D()) / float64(height-1)

				ray := r.Camera.GetRay(u, v, sampler)
				accum = accum.Add(r.integrator.RayColor(ray, r.Scene, r.Lights, r.Background, r.Config.MaxDepth, sampler))
			}

			img.Set(row, col, accum.Multiply(1.0/float64(r.Config.SamplesPerPixel)))
		}
	}
}
