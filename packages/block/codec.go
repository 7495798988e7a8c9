package block

import (
	"context"
	"encoding/base64"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// ChunkSize is the number of base64 characters stored per row when a file
// is embedded in a block
const ChunkSize = 5000

// FileTerminator closes an embedded file frame
const FileTerminator = "</file>"

var fileMarker = regexp.MustCompile(`^<file=(.+)>$`)

// FileReader supplies file contents by name
type FileReader interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// FileWriter stores file contents by name
type FileWriter interface {
	Write(ctx context.Context, name string, data []byte) error
}

// EncodeFile reads the named file and embeds it in a single-column block:
// a <file=NAME> marker row carrying the base name, base64 chunk rows, and a
// closing </file> row.
func EncodeFile(ctx context.Context, r FileReader, name string) (*Block, error) {
	data, err := r.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	return EncodeBytes(baseName(name), data), nil
}

// baseName accepts both slash and OS separated names
func baseName(name string) string {
	return path.Base(filepath.ToSlash(name))
}

// EncodeBytes embeds data under name using the same framing as EncodeFile
func EncodeBytes(name string, data []byte) *Block {
	encoded := base64.StdEncoding.EncodeToString(data)
	column := []Primitive{"<file=" + name + ">"}
	for chunk := range slices.Chunk([]byte(encoded), ChunkSize) {
		column = append(column, string(chunk))
	}
	column = append(column, FileTerminator)

	b := fromRows(toRows(column, true))
	return b.Minimized()
}

// File is one decoded file frame
type File struct {
	Name string
	Data []byte
}

// DecodeFiles extracts every embedded file frame. columns are scanned top
// to bottom, left to right; a column may hold several frames. a frame
// without a terminator, a non-text body cell or invalid base64 makes the
// whole decode fail with ErrMalformedEncoding.
func (b *Block) DecodeFiles() ([]File, error) {
	var files []File
	for col := 1; col <= b.cols; col++ {
		column, err := b.Range(1, col, b.rows, col)
		if err != nil {
			return nil, err
		}

		var (
			name    string
			body    strings.Builder
			inFrame bool
			start   int
		)
		for cell := range column.Iterate() {
			text, isText := cell.Value.(string)
			if !inFrame {
				if !isText {
					continue
				}
				if m := fileMarker.FindStringSubmatch(text); m != nil {
					name, inFrame, start = m[1], true, cell.Row
					body.Reset()
				}
				continue
			}

			if IsEmpty(cell.Value) {
				continue
			}
			if !isText {
				return nil, newError(MalformedEncoding,
					"file %q: non-text cell %v at row %d column %d", name, cell.Value, cell.Row, col)
			}
			if text != FileTerminator {
				body.WriteString(text)
				continue
			}

			data, err := base64.StdEncoding.DecodeString(body.String())
			if err != nil {
				return nil, &Error{
					Code:    MalformedEncoding,
					Message: "file " + name + ": invalid base64",
					Err:     err,
				}
			}
			files = append(files, File{Name: name, Data: data})
			inFrame = false
		}

		if inFrame {
			return nil, newError(MalformedEncoding,
				"file %q opened at row %d column %d has no %s", name, start, col, FileTerminator)
		}
	}
	return files, nil
}

// DecodeToFiles decodes every embedded file and writes it through w under
// the name found in its marker, in scan order. it returns the number of
// files written. nothing is written when the block is malformed.
func (b *Block) DecodeToFiles(ctx context.Context, w FileWriter) (int, error) {
	files, err := b.DecodeFiles()
	if err != nil {
		return 0, err
	}
	for i, f := range files {
		if err := w.Write(ctx, f.Name, f.Data); err != nil {
			return i, err
		}
	}
	return len(files), nil
}
