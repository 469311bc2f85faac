package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/mobius/pkg/errors"
)

const ffmpegHints = "  macOS:  brew install ffmpeg\n  Linux:  apt install ffmpeg"

// VideoOptions configures [EncodeVideo].
type VideoOptions struct {
	// Pattern is an ffmpeg image-sequence pattern such as
	// "/tmp/frames/frame_%04d.png".
	Pattern string

	// Output is the destination file; its extension picks the container.
	Output string

	// FPS is the input and output frame rate.
	FPS int
}

// EncodeVideo assembles a numbered PNG sequence into an H.264 video using
// ffmpeg. The context cancels the ffmpeg process.
// Requires ffmpeg: brew install ffmpeg (macOS), apt install ffmpeg (Linux).
func EncodeVideo(ctx context.Context, opts VideoOptions) error {
	if opts.FPS <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "fps must be > 0, got %d", opts.FPS)
	}
	if opts.Pattern == "" || opts.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "frame pattern and output are required")
	}
	if !HasTool("ffmpeg") {
		return errors.Wrap(errors.ErrCodeUnsupported,
			&errors.ToolMissingError{Tool: "ffmpeg", Hints: ffmpegHints},
			"video export requires ffmpeg")
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", ffmpegArgs(opts)...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "ffmpeg: %s", lastLines(errBuf.String(), 5))
	}
	return nil
}

// ffmpegArgs builds the ffmpeg command line. yuv420p keeps the output
// playable in QuickTime and browsers; the scale filter rounds odd frame
// sizes down to even, which libx264 requires.
func ffmpegArgs(opts VideoOptions) []string {
	rate := fmt.Sprintf("%d", opts.FPS)
	return []string{
		"-y", "-loglevel", "error",
		"-framerate", rate,
		"-i", opts.Pattern,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-r", rate,
		opts.Output,
	}
}

// lastLines trims noisy tool output to its final n lines.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
