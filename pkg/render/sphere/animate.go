package sphere

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/mobius"
	"github.com/matzehuels/mobius/pkg/render"
)

const (
	DefaultFrames = 120
	DefaultFPS    = 30
	DefaultWidth  = 1500
	DefaultHeight = 1200
	DefaultOutput = "sphere_moebius.mp4"

	// framePattern names rendered frames inside the work directory.
	framePattern = "frame_%04d.png"

	// progressEvery is the frame interval between progress logs.
	progressEvery = 10
)

// Options configures [Animate] and [RenderFrames].
type Options struct {
	Frames     int
	FPS        int
	Resolution int
	Meridians  int
	Parallels  int
	Width      int
	Height     int

	// Output is the video path. The fallback preview is written next to it
	// with a .png extension.
	Output string

	// Logger receives progress. Nil discards.
	Logger *log.Logger

	// OnFrame is called after each frame is written, from the rendering
	// goroutines; it must be safe for concurrent use.
	OnFrame func(index, total int)
}

// DefaultOptions returns the standard 120-frame, 30 fps animation.
func DefaultOptions() Options {
	return Options{
		Frames:     DefaultFrames,
		FPS:        DefaultFPS,
		Resolution: mobius.DefaultResolution,
		Meridians:  mobius.DefaultMeridians,
		Parallels:  mobius.DefaultParallels,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Output:     DefaultOutput,
	}
}

// Validate checks that opts describe a renderable animation.
func (o Options) Validate() error {
	switch {
	case o.Frames <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "frames must be > 0, got %d", o.Frames)
	case o.FPS <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "fps must be > 0, got %d", o.FPS)
	case o.Resolution < 2:
		return errors.New(errors.ErrCodeInvalidInput, "resolution must be >= 2, got %d", o.Resolution)
	case o.Meridians < 0 || o.Parallels < 0:
		return errors.New(errors.ErrCodeInvalidInput, "line counts must be >= 0")
	case o.Width <= 0 || o.Height <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "frame size must be positive, got %dx%d", o.Width, o.Height)
	}
	return errors.ValidateOutputPath(o.Output)
}

// PreviewPath is where the still frame goes when no video can be made.
func (o Options) PreviewPath() string {
	return strings.TrimSuffix(o.Output, filepath.Ext(o.Output)) + ".png"
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Result describes what [Animate] wrote.
type Result struct {
	// Path is the video, or the preview image when Fallback is set.
	Path   string
	Frames int

	// Fallback reports that encoding failed and Path is a still frame.
	Fallback bool
	// VideoErr is the encoding failure behind a fallback.
	VideoErr error
}

// RenderFrames renders every frame of the animation into dir and returns
// the file paths in frame order. Frames are rendered concurrently, one
// worker per CPU; the first error or a cancelled ctx stops the rest.
func RenderFrames(ctx context.Context, scene Scene, opts Options, dir string) ([]string, error) {
	logger := opts.logger()
	paths := make([]string, opts.Frames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range opts.Frames {
		paths[i] = filepath.Join(dir, fmt.Sprintf(framePattern, i))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img := RenderFrame(Frame(scene, i, opts.Frames), opts.Width, opts.Height)
			if err := gg.SavePNG(paths[i], img); err != nil {
				return errors.Wrap(errors.ErrCodeRenderFailed, err, "write frame %d", i)
			}
			if i%progressEvery == 0 {
				logger.Infof("rendered frame %d/%d", i, opts.Frames)
			}
			if opts.OnFrame != nil {
				opts.OnFrame(i, opts.Frames)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Animate renders the animation and encodes it to opts.Output. If the
// video cannot be encoded, the last frame is saved to opts.PreviewPath()
// and the result is marked as a fallback; only rendering failures and
// cancellation are returned as errors.
func Animate(ctx context.Context, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	logger := opts.logger()

	dir, err := os.MkdirTemp("", "mobius-frames-*")
	if err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInternal, err, "create frame directory")
	}
	defer os.RemoveAll(dir)

	scene := NewScene(opts.Meridians, opts.Parallels, opts.Resolution)
	logger.Infof("rendering %d frames", opts.Frames)
	frames, err := RenderFrames(ctx, scene, opts, dir)
	if err != nil {
		return Result{}, err
	}

	if err := ensureDir(opts.Output); err != nil {
		return Result{}, err
	}

	videoErr := render.EncodeVideo(ctx, render.VideoOptions{
		Pattern: filepath.Join(dir, framePattern),
		Output:  opts.Output,
		FPS:     opts.FPS,
	})
	if videoErr == nil {
		return Result{Path: opts.Output, Frames: len(frames)}, nil
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	logger.Warn("video encoding failed, saving last frame instead", "err", videoErr)
	preview := opts.PreviewPath()
	if err := copyFile(frames[len(frames)-1], preview); err != nil {
		return Result{}, err
	}
	return Result{Path: preview, Frames: len(frames), Fallback: true, VideoErr: videoErr}, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read %s", src)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", dst)
	}
	return nil
}
