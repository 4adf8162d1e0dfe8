package constants

import "strings"

// FileKind classifies an extracted encounter file.
type FileKind string

// Stable values (store these exact strings in DB).
const (
	KindImage    FileKind = "image"
	KindDocument FileKind = "document"
)

// FileKinds holds the allowed values for the file_type column.
var FileKinds = []string{string(KindImage), string(KindDocument)}

// ImageExtensions holds the extensions extracted into the images area.
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
}

// DocumentExtensions holds the extensions extracted into the documents area.
var DocumentExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ClassifyExt maps a normalized extension to a file kind.
// The second return is false for extensions that are not extracted at all.
func ClassifyExt(ext string) (FileKind, bool) {
	ext = NormalizeExt(ext)
	if _, ok := ImageExtensions[ext]; ok {
		return KindImage, true
	}
	if _, ok := DocumentExtensions[ext]; ok {
		return KindDocument, true
	}
	return "", false
}
