package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/podhaven/ingest-api/pkg/config"
)

// DurationExtractor reads codec-level duration from raw audio bytes.
// The filename hint only steers container detection, it is never trusted
// on its own.
type DurationExtractor interface {
	ExtractDurationSeconds(ctx context.Context, data []byte, filenameHint string) (int, error)
}

// FFprobeExtractor implements DurationExtractor by shelling out to ffprobe
type FFprobeExtractor struct {
	ffprobePath string
	timeout     time.Duration
}

var _ DurationExtractor = (*FFprobeExtractor)(nil)

// NewFFprobeExtractor creates an extractor using the configured ffprobe binary
func NewFFprobeExtractor(cfg config.MetadataConfig) *FFprobeExtractor {
	path := cfg.FFprobePath
	if path == "" {
		path = "ffprobe"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FFprobeExtractor{ffprobePath: path, timeout: timeout}
}

// ffprobeOutput represents the JSON structure returned by ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		Duration  string `json:"duration"`
	} `json:"streams"`
}

// ExtractDurationSeconds writes data to a temp file and probes it.
// Duration is truncated to whole seconds.
func (e *FFprobeExtractor) ExtractDurationSeconds(ctx context.Context, data []byte, filenameHint string) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("no audio data to probe")
	}

	tmp, err := os.CreateTemp("", "probe-*"+filepath.Ext(filenameHint))
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := []string{
		"-v", "quiet",
		"-show_format",
		"-show_streams",
		"-select_streams", "a:0",
		"-of", "json",
		tmp.Name(),
	}

	cmd := exec.CommandContext(probeCtx, e.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w (%s)", err, stderr.String())
	}

	var output ffprobeOutput
	if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	if sec, ok := parseSeconds(output.Format.Duration); ok {
		return sec, nil
	}
	for _, stream := range output.Streams {
		if stream.CodecType != "audio" {
			continue
		}
		if sec, ok := parseSeconds(stream.Duration); ok {
			return sec, nil
		}
	}

	return 0, fmt.Errorf("ffprobe reported no duration")
}

func parseSeconds(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int(f), true
}
