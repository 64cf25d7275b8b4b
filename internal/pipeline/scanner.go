package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Source is one image file discovered under the input directory.
type Source struct {
	AbsPath string // location on disk
	RelPath string // slash path relative to the input directory
	Key     string // RelPath without the extension; names the report entry
	Format  string // canonical container format (png, jpeg, ...)
	Size    int64
}

// decodableFormats maps file extensions to the canonical name of the
// decoder registered for them: stdlib gif/jpeg/png plus the x/image
// bmp, tiff and webp decoders the processor imports. Extensions with no
// registered decoder are not worth handing to image.Decode.
var decodableFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".webp": "webp",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
}

// ScanImages walks inputDir and collects every decodable image. skipDir
// names a directory subtree to leave out, so converting into a folder
// nested under the input does not feed earlier outputs back in; pass ""
// to scan everything. Hidden files and directories are ignored.
func ScanImages(inputDir, skipDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != inputDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if skipDir != "" && path == skipDir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		format, ok := decodableFormats[strings.ToLower(ext)]
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		sources = append(sources, Source{
			AbsPath: path,
			RelPath: rel,
			Key:     strings.TrimSuffix(rel, ext),
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
