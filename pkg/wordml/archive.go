package wordml

import (
	"archive/zip"
	"bytes"
	"io"
)

// Well-known entry paths inside a WordprocessingML package.
const (
	EntryDocument      = "word/document.xml"
	EntryStyles        = "word/styles.xml"
	EntryNumbering     = "word/numbering.xml"
	EntryRelationships = "word/_rels/document.xml.rels"
	EntryContentTypes  = "[Content_Types].xml"
	EntryPackageRels   = "_rels/.rels"
)

// ReadEntry returns the content of one named entry from an in-memory zip
// package. A missing entry is reported by ok=false, not an error; an error
// means the buffer is not a readable zip archive.
func ReadEntry(pkg []byte, name string) (data []byte, ok bool, err error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, false, NewPackageError("open", name, err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, false, NewPackageError("read", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, false, NewPackageError("read", name, err)
		}
		return data, true, nil
	}
	return nil, false, nil
}

// ListEntries returns the entry names of the package in archive order.
func ListEntries(pkg []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, NewPackageError("open", "", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// ReplaceEntry rebuilds the package with the named entry's content replaced,
// keeping every other entry and the original entry order. If the entry does
// not exist it is appended. Entry headers are written fresh, so output bytes
// depend only on input bytes.
func ReplaceEntry(pkg []byte, name string, content []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, NewPackageError("open", name, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	replaced := false
	for _, f := range zr.File {
		var data []byte
		if f.Name == name {
			data = content
			replaced = true
		} else {
			rc, err := f.Open()
			if err != nil {
				return nil, NewPackageError("read", f.Name, err)
			}
			data, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, NewPackageError("read", f.Name, err)
			}
		}
		if err := writeZipEntry(zw, f.Name, data); err != nil {
			return nil, err
		}
	}
	if !replaced {
		if err := writeZipEntry(zw, name, content); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, NewPackageError("write", name, err)
	}
	return buf.Bytes(), nil
}

// ArchiveEntry is one named payload of a package under assembly.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// WriteArchive assembles a fresh package from the given entries in order.
func WriteArchive(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		if err := writeZipEntry(zw, e.Name, e.Data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, NewPackageError("write", "", err)
	}
	return buf.Bytes(), nil
}

func writeZipEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return NewPackageError("write", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return NewPackageError("write", name, err)
	}
	return nil
}
