//go:build unit

package request_test

import (
	"testing"

	"starclip/domain/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVideoFile(t *testing.T) {
	const mib = int64(1) << 20

	tests := []struct {
		name     string
		fileName string
		mimeType string
		size     int64
		errIs    error
	}{
		{name: "valid mp4", fileName: "birthday.mp4", mimeType: "video/mp4", size: 10 * mib},
		{name: "valid webm", fileName: "greeting.webm", mimeType: "video/webm", size: 1 * mib},
		{name: "valid quicktime at 50 MiB", fileName: "shoutout.mov", mimeType: "video/quicktime", size: 50 * mib},
		{name: "exactly at the size limit", fileName: "max.mp4", mimeType: "video/mp4", size: request.MaxVideoBytes},
		{name: "mp4 over the size limit", fileName: "big.mp4", mimeType: "video/mp4", size: 101 * mib, errIs: request.ErrVideoTooLarge},
		{name: "avi rejected regardless of size", fileName: "clip.avi", mimeType: "video/x-msvideo", size: 1 * mib, errIs: request.ErrUnsupportedVideoType},
		{name: "empty file", fileName: "empty.mp4", mimeType: "video/mp4", size: 0, errIs: request.ErrEmptyVideoFile},
		{name: "negative size", fileName: "odd.mp4", mimeType: "video/mp4", size: -1, errIs: request.ErrEmptyVideoFile},
		{name: "mime with codec parameters", fileName: "clip.mp4", mimeType: "video/mp4; codecs=avc1", size: 2 * mib},
		{name: "mixed case mime", fileName: "clip.mp4", mimeType: "Video/MP4", size: 2 * mib},
		{name: "missing mime falls back to extension", fileName: "clip.MOV", mimeType: "", size: 2 * mib},
		{name: "missing mime and unknown extension", fileName: "clip.mkv", mimeType: "", size: 2 * mib, errIs: request.ErrUnsupportedVideoType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vf, err := request.NewVideoFile(tt.fileName, tt.mimeType, tt.size)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, vf.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fileName, vf.Name())
			assert.Equal(t, tt.size, vf.Size())
			assert.Contains(t, []string{"video/mp4", "video/webm", "video/quicktime"}, vf.MIMEType())
		})
	}
}
