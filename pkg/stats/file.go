package stats

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// File represents a file containing zone statistics.
// This is typically a CSV export, but Excel workbooks are read as well.
// URL is either a local path or an http(s) address.
type File struct {
	URL           string
	Title         string
	ContentBase64 string
}

func (f *File) IsRemote() bool {
	return strings.HasPrefix(f.URL, "http://") || strings.HasPrefix(f.URL, "https://")
}

// LoadContent reads the file from disk, or downloads it, and keeps the
// content so the file can be cached in a Database.
func (f *File) LoadContent() error {
	var data []byte
	var err error

	if f.IsRemote() {
		data, err = download(f.URL)
	} else {
		data, err = os.ReadFile(f.URL)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", f.URL, err)
	}

	f.ContentBase64 = base64.StdEncoding.EncodeToString(data)
	return nil
}

// Content returns the raw file content, loading it first if needed.
func (f *File) Content() ([]byte, error) {
	if f.ContentBase64 == "" {
		if err := f.LoadContent(); err != nil {
			return nil, err
		}
	}
	return base64.StdEncoding.DecodeString(f.ContentBase64)
}
