package pkpass

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"truefans/config"
	"truefans/internal/domain/constants"
	"truefans/internal/domain/service"
	mockService "truefans/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, policy string) config.PackagerConfig {
	t.Helper()

	return config.PackagerConfig{
		PassTypeIdentifier: "pass.com.truefans.test",
		TeamIdentifier:     "TEAM123",
		OrganizationName:   "TrueFans",
		Description:        "Restaurant Loyalty Pass",
		ScratchDir:         t.TempDir(),
		LogoFailurePolicy:  policy,
		LogoSize:           29,
	}
}

func testFields() service.PassFields {
	return service.PassFields{
		SerialNumber:   "5f8c2a8e-1b7e-4d8c-9a43-0e3c1d2b7f10",
		RestaurantName: "Noodle Bar",
		HolderName:     "Ada",
		Points:         10,
		Visits:         2,
	}
}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

// resizePNGHeader rewrites the IHDR dimensions of a valid PNG and fixes its CRC,
// leaving the pixel data untouched.
func resizePNGHeader(t *testing.T, data []byte, width, height uint32) []byte {
	t.Helper()

	out := bytes.Clone(data)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], width)
	binary.BigEndian.PutUint32(out[20:24], height)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))

	return out
}

func unzip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = content
	}

	return files
}

func assertScratchEmpty(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be cleaned up")
}

func TestPackager_Package_Contents(t *testing.T) {
	cfg := testConfig(t, constants.LogoPolicySkip)
	p, err := NewPackager(cfg, mockService.NewMockImageSource(t), nil, slog.Default())
	require.NoError(t, err)

	artifact, err := p.Package(context.Background(), testFields())
	require.NoError(t, err)
	assert.Equal(t, constants.PassFilename, artifact.Filename)
	assert.Equal(t, constants.PassContentType, artifact.ContentType)
	assert.False(t, artifact.HasLogo)

	files := unzip(t, artifact.Data)
	assert.Contains(t, files, passJSONFile)
	assert.Contains(t, files, iconFile)
	assert.Contains(t, files, manifestFile)
	assert.NotContains(t, files, logoFile)
	assert.NotContains(t, files, signatureFile)

	var pass map[string]any
	require.NoError(t, json.Unmarshal(files[passJSONFile], &pass))
	assert.Equal(t, testFields().SerialNumber, pass["serialNumber"])
	assert.Equal(t, "Noodle Bar", pass["logoText"])
	assert.Equal(t, "Restaurant Loyalty Pass", pass["description"])
	assert.Equal(t, "pass.com.truefans.test", pass["passTypeIdentifier"])
	assert.Equal(t, "TEAM123", pass["teamIdentifier"])

	var manifest map[string]string
	require.NoError(t, json.Unmarshal(files[manifestFile], &manifest))
	for name, content := range files {
		if name == manifestFile {
			continue
		}
		sum := sha1.Sum(content) //nolint:gosec
		assert.Equal(t, hex.EncodeToString(sum[:]), manifest[name], name)
	}

	assertScratchEmpty(t, cfg.ScratchDir)
}

func TestPackager_Package_Reproducible(t *testing.T) {
	cfg := testConfig(t, constants.LogoPolicySkip)
	logo := encodeTestPNG(t, 120, 80)

	images := mockService.NewMockImageSource(t)
	images.EXPECT().Fetch(mock.Anything, "noodle.png").Return(logo, nil).Times(2)

	p, err := NewPackager(cfg, images, nil, slog.Default())
	require.NoError(t, err)

	fields := testFields()
	fields.LogoRef = "noodle.png"

	first, err := p.Package(context.Background(), fields)
	require.NoError(t, err)
	second, err := p.Package(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestPackager_Package_NormalizesLogo(t *testing.T) {
	cfg := testConfig(t, constants.LogoPolicyFail)

	images := mockService.NewMockImageSource(t)
	images.EXPECT().Fetch(mock.Anything, "noodle.png").Return(encodeTestPNG(t, 300, 120), nil)

	p, err := NewPackager(cfg, images, nil, slog.Default())
	require.NoError(t, err)

	fields := testFields()
	fields.LogoRef = "noodle.png"

	artifact, err := p.Package(context.Background(), fields)
	require.NoError(t, err)
	assert.True(t, artifact.HasLogo)

	files := unzip(t, artifact.Data)
	require.Contains(t, files, logoFile)

	logo, err := png.Decode(bytes.NewReader(files[logoFile]))
	require.NoError(t, err)
	assert.Equal(t, 29, logo.Bounds().Dx())
	assert.Equal(t, 29, logo.Bounds().Dy())

	assertScratchEmpty(t, cfg.ScratchDir)
}

func TestPackager_Package_LogoFailurePolicy(t *testing.T) {
	oversized := resizePNGHeader(t, encodeTestPNG(t, 4, 4), 40000, 40000)

	tests := []struct {
		name      string
		policy    string
		fetchData []byte
		fetchErr  error
		wantErr   error
	}{
		{name: "missing logo skipped", policy: constants.LogoPolicySkip, fetchErr: service.ErrImageNotFound},
		{name: "undecodable logo skipped", policy: constants.LogoPolicySkip, fetchData: []byte("not an image")},
		{name: "missing logo fails", policy: constants.LogoPolicyFail, fetchErr: service.ErrImageNotFound, wantErr: service.ErrLogoUnavailable},
		{name: "undecodable logo fails", policy: constants.LogoPolicyFail, fetchData: []byte("not an image"), wantErr: service.ErrLogoUnavailable},
		{name: "oversized logo skipped", policy: constants.LogoPolicySkip, fetchData: oversized},
		{name: "oversized logo fails", policy: constants.LogoPolicyFail, fetchData: oversized, wantErr: service.ErrLogoUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.policy)

			images := mockService.NewMockImageSource(t)
			images.EXPECT().Fetch(mock.Anything, "missing.png").Return(tt.fetchData, tt.fetchErr)

			p, err := NewPackager(cfg, images, nil, slog.Default())
			require.NoError(t, err)

			fields := testFields()
			fields.LogoRef = "missing.png"

			artifact, err := p.Package(context.Background(), fields)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, artifact)
			} else {
				require.NoError(t, err)
				assert.False(t, artifact.HasLogo)
				assert.NotContains(t, unzip(t, artifact.Data), logoFile)
			}

			assertScratchEmpty(t, cfg.ScratchDir)
		})
	}
}

func TestPackager_NormalizeLogo_RejectsOversizedSource(t *testing.T) {
	cfg := testConfig(t, constants.LogoPolicyFail)

	images := mockService.NewMockImageSource(t)
	images.EXPECT().Fetch(mock.Anything, "huge.png").Return(resizePNGHeader(t, encodeTestPNG(t, 4, 4), maxLogoSourcePixels+1, 16), nil)

	p, err := NewPackager(cfg, images, nil, slog.Default())
	require.NoError(t, err)

	logo, err := p.(*packager).normalizeLogo(context.Background(), t.TempDir(), "huge.png")
	require.ErrorIs(t, err, errLogoTooLarge)
	assert.Nil(t, logo)
}

func TestPackager_Package_Signed(t *testing.T) {
	cfg := testConfig(t, constants.LogoPolicySkip)

	signer := mockService.NewMockPassSigner(t)
	signer.EXPECT().Sign(mock.Anything, mock.AnythingOfType("[]uint8")).Return([]byte("detached-signature"), nil)

	p, err := NewPackager(cfg, mockService.NewMockImageSource(t), signer, slog.Default())
	require.NoError(t, err)

	artifact, err := p.Package(context.Background(), testFields())
	require.NoError(t, err)

	files := unzip(t, artifact.Data)
	assert.Equal(t, []byte("detached-signature"), files[signatureFile])
}

func TestPackager_ModelDir(t *testing.T) {
	modelDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, passJSONFile), []byte(`{"backgroundColor":"rgb(0,0,0)","serialNumber":"stale"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, "strip.png"), encodeTestPNG(t, 4, 4), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, manifestFile), []byte(`{}`), 0o600))

	cfg := testConfig(t, constants.LogoPolicySkip)
	cfg.ModelDir = modelDir

	p, err := NewPackager(cfg, mockService.NewMockImageSource(t), NewUnsignedSigner(), slog.Default())
	require.NoError(t, err)

	artifact, err := p.Package(context.Background(), testFields())
	require.NoError(t, err)

	files := unzip(t, artifact.Data)
	assert.Contains(t, files, "strip.png")
	assert.Contains(t, files, iconFile)
	assert.NotContains(t, files, signatureFile)

	var pass map[string]any
	require.NoError(t, json.Unmarshal(files[passJSONFile], &pass))
	assert.Equal(t, "rgb(0,0,0)", pass["backgroundColor"])
	assert.Equal(t, testFields().SerialNumber, pass["serialNumber"])
}

func TestPackager_Package_CanceledContext(t *testing.T) {
	cfg := testConfig(t, constants.LogoPolicySkip)
	p, err := NewPackager(cfg, mockService.NewMockImageSource(t), nil, slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Package(ctx, testFields())
	require.ErrorIs(t, err, context.Canceled)
	assertScratchEmpty(t, cfg.ScratchDir)
}
