package placeholder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/glizzus/assetgen/internal/mpeg"
)

// ContainerHeader is an ID3v2.3 tag header with no flags and a zero size.
var ContainerHeader = [10]byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

var profile = mpeg.DefaultProfile

// Size returns the number of bytes Build writes for the given duration.
func Size(seconds float64) int64 {
	return int64(len(ContainerHeader)) + int64(profile.FrameCount(seconds))*int64(profile.FrameSize)
}

// silentFrame returns one complete frame: the profile header followed by a
// zeroed payload.
func silentFrame() []byte {
	frame := make([]byte, profile.FrameSize)
	header := profile.Header().Bytes()
	copy(frame, header[:])
	return frame
}

// WriteTo writes a placeholder stream of the given duration to w and returns
// the number of bytes written.
func WriteTo(w io.Writer, seconds float64) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	n, err := bw.Write(ContainerHeader[:])
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("failed to write container header: %w", err)
	}

	frame := silentFrame()
	for range profile.FrameCount(seconds) {
		n, err := bw.Write(frame)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("failed to write frame: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush: %w", err)
	}
	return written, nil
}

// Build creates or truncates the file at path and writes a placeholder of
// the given duration to it. A failed write can leave a partial file behind.
func Build(path string, seconds float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if _, err := WriteTo(f, seconds); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
