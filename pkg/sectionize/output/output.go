// Package output serializes structured documents and bundles them.
package output

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ToJSON serializes v to JSON with no trailing newline. Ordered models keep
// their key order; <, > and & are escaped as by encoding/json.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, eris.Wrap(err, "encode json")
	}
	return data, nil
}

// FileName returns the structured output name for a document:
// structured_<stem>.json.
func FileName(documentName string) string {
	base := filepath.Base(documentName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "document"
	}
	return "structured_" + stem + ".json"
}

// RawFileName returns the segmented-document output name: <stem>.json.
func RawFileName(documentName string) string {
	return strings.TrimPrefix(FileName(documentName), "structured_")
}

// WriteFile serializes v into dir/name, creating dir, and returns the path.
func WriteFile(dir, name string, v any, pretty bool) (string, error) {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", eris.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", eris.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// BundleEntry is one file of a ZIP bundle.
type BundleEntry struct {
	Name string
	Data []byte
}

// WriteBundle writes entries as a deflated ZIP archive to w.
func WriteBundle(w io.Writer, entries []BundleEntry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate})
		if err != nil {
			return eris.Wrapf(err, "add %s", e.Name)
		}
		if _, err := fw.Write(e.Data); err != nil {
			return eris.Wrapf(err, "write %s", e.Name)
		}
	}
	return eris.Wrap(zw.Close(), "close bundle")
}
