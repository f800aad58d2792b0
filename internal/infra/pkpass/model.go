package pkpass

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"truefans/internal/errors"
)

const (
	passJSONFile  = "pass.json"
	iconFile      = "icon.png"
	logoFile      = "logo.png"
	manifestFile  = "manifest.json"
	signatureFile = "signature"

	defaultIconSize = 29
)

// brandColor fills the built-in icon.
var brandColor = color.RGBA{R: 0xE8, G: 0x4A, B: 0x27, A: 0xFF}

// passModel is the set of files every bundle starts from.
type passModel struct {
	files map[string][]byte
}

// loadModel reads the regular files of dir. An empty dir selects the built-in model.
func loadModel(dir string) (*passModel, error) {
	model, err := builtinModel()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return model, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pass model %s", dir)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		// Derived files are always regenerated.
		switch entry.Name() {
		case manifestFile, signatureFile:
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read pass model file %s", entry.Name())
		}
		model.files[entry.Name()] = data
	}

	return model, nil
}

func builtinModel() (*passModel, error) {
	icon, err := solidPNG(defaultIconSize, brandColor)
	if err != nil {
		return nil, err
	}

	return &passModel{
		files: map[string][]byte{
			passJSONFile: []byte(`{"formatVersion":1,"backgroundColor":"rgb(255,255,255)","foregroundColor":"rgb(33,33,33)","labelColor":"rgb(232,74,39)"}`),
			iconFile:     icon,
		},
	}, nil
}

func solidPNG(size int, c color.Color) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode icon")
	}

	return buf.Bytes(), nil
}

// clone returns a copy of the file set that a single Package call may modify.
func (m *passModel) clone() map[string][]byte {
	files := make(map[string][]byte, len(m.files)+3)
	for name, data := range m.files {
		files[name] = data
	}

	return files
}
