package sphere

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mobius/pkg/errors"
)

func smallOptions(t *testing.T) Options {
	t.Helper()
	opts := DefaultOptions()
	opts.Frames = 4
	opts.Resolution = 8
	opts.Width, opts.Height = 40, 32
	opts.Output = filepath.Join(t.TempDir(), "out", "sphere.mp4")
	return opts
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no frames", func(o *Options) { o.Frames = 0 }},
		{"no fps", func(o *Options) { o.FPS = 0 }},
		{"resolution", func(o *Options) { o.Resolution = 1 }},
		{"negative meridians", func(o *Options) { o.Meridians = -1 }},
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"no output", func(o *Options) { o.Output = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			assert.Error(t, opts.Validate())
		})
	}
	assert.NoError(t, DefaultOptions().Validate())
}

func TestPreviewPath(t *testing.T) {
	opts := Options{Output: "out/sphere_moebius.mp4"}
	assert.Equal(t, "out/sphere_moebius.png", opts.PreviewPath())
}

func TestRenderFrames(t *testing.T) {
	opts := smallOptions(t)
	dir := t.TempDir()

	var calls atomic.Int32
	opts.OnFrame = func(int, int) { calls.Add(1) }

	paths, err := RenderFrames(context.Background(), NewScene(3, 3, 8), opts, dir)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, filepath.Join(dir, "frame_0003.png"), paths[3])
	assert.EqualValues(t, 4, calls.Load())

	for _, p := range paths {
		f, err := os.Open(p)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 40, img.Bounds().Dx())
	}
}

func TestRenderFramesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderFrames(ctx, NewScene(3, 3, 8), smallOptions(t), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnimateFallsBackWithoutFFmpeg(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	opts := smallOptions(t)

	res, err := Animate(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.True(t, errors.IsToolMissing(res.VideoErr))
	assert.Equal(t, opts.PreviewPath(), res.Path)
	assert.Equal(t, 4, res.Frames)

	f, err := os.Open(res.Path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)

	_, err = os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(err), "no video should be written")
}

func TestAnimateInvalid(t *testing.T) {
	opts := smallOptions(t)
	opts.FPS = 0
	_, err := Animate(context.Background(), opts)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
