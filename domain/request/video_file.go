package request

import (
	"path/filepath"
	"strings"

	"starclip/internal/pkg/errs"
)

const MaxVideoBytes = 100 << 20 // 100 MiB

var (
	ErrUnsupportedVideoType = errs.New("unsupported video file type")
	ErrVideoTooLarge        = errs.New("video file exceeds the size limit")
	ErrEmptyVideoFile       = errs.New("video file is empty")
)

var acceptedMIMETypes = map[string]struct{}{
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
}

var extensionMIMETypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".qt":   "video/quicktime",
}

// VideoFile is a validated fulfillment artifact candidate. Both the file
// picker and the drag-and-drop path must construct one through NewVideoFile
// so the acceptance rules cannot diverge between input methods.
type VideoFile struct {
	name     string
	mimeType string
	size     int64
}

// NewVideoFile validates name/type/size. An empty mimeType falls back to the
// file extension, which is what drag-and-drop sources without a sniffed type
// provide.
func NewVideoFile(name, mimeType string, size int64) (VideoFile, error) {
	if size <= 0 {
		return VideoFile{}, ErrEmptyVideoFile
	}
	if size > MaxVideoBytes {
		return VideoFile{}, ErrVideoTooLarge
	}

	mt := normalizeMIMEType(mimeType)
	if mt == "" {
		mt = extensionMIMETypes[strings.ToLower(filepath.Ext(name))]
	}
	if _, ok := acceptedMIMETypes[mt]; !ok {
		return VideoFile{}, ErrUnsupportedVideoType
	}

	return VideoFile{name: name, mimeType: mt, size: size}, nil
}

func (f VideoFile) Name() string     { return f.name }
func (f VideoFile) MIMEType() string { return f.mimeType }
func (f VideoFile) Size() int64      { return f.size }

func (f VideoFile) IsZero() bool {
	return f == VideoFile{}
}

func normalizeMIMEType(mt string) string {
	mt = strings.ToLower(strings.TrimSpace(mt))
	// strip parameters like "video/mp4; codecs=avc1"
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
