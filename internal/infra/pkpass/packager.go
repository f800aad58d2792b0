// Package pkpass assembles Apple Wallet pass bundles (.pkpass zip archives).
package pkpass

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec // the wallet manifest format mandates SHA-1
	"encoding/hex"
	"encoding/json"
	"image"
	_ "image/gif"  // logo decoding
	_ "image/jpeg" // logo decoding
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"truefans/config"
	"truefans/internal/domain/constants"
	"truefans/internal/domain/service"
	"truefans/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // logo decoding
)

// reproducibleModTime is stamped on every archive entry so identical inputs
// produce identical bytes.
var reproducibleModTime = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxLogoSourcePixels bounds each dimension of a logo before it is decoded.
const maxLogoSourcePixels = 4096

var errLogoTooLarge = errors.New("logo dimensions exceed limit")

// Params defines the required parameters
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ImageSource service.ImageSource
	Signer      service.PassSigner
}

type packager struct {
	cfg    config.PackagerConfig
	model  *passModel
	images service.ImageSource
	signer service.PassSigner
	logger *slog.Logger
}

// New loads the pass model and builds the packager.
func New(params Params) (service.PassPackager, error) {
	return NewPackager(*params.Config.Packager, params.ImageSource, params.Signer, params.Logger)
}

// NewPackager builds a packager from explicit collaborators. signer may be nil.
func NewPackager(cfg config.PackagerConfig, images service.ImageSource, signer service.PassSigner, logger *slog.Logger) (service.PassPackager, error) {
	model, err := loadModel(cfg.ModelDir)
	if err != nil {
		return nil, err
	}

	return &packager{
		cfg:    cfg,
		model:  model,
		images: images,
		signer: signer,
		logger: logger,
	}, nil
}

// Package renders fields into a bundle. Every temporary file lives in a per-call
// scratch directory that is removed before returning, on success and on failure.
func (p *packager) Package(ctx context.Context, fields service.PassFields) (*service.PassArtifact, error) {
	scratch, err := os.MkdirTemp(p.cfg.ScratchDir, "pkpass-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scratch directory")
	}
	defer os.RemoveAll(scratch)

	files := p.model.clone()

	passJSON, err := p.renderPassJSON(files[passJSONFile], fields)
	if err != nil {
		return nil, err
	}
	files[passJSONFile] = passJSON

	hasLogo := false
	if fields.LogoRef != "" {
		logo, err := p.normalizeLogo(ctx, scratch, fields.LogoRef)
		switch {
		case err == nil:
			files[logoFile] = logo
			hasLogo = true
		case p.cfg.LogoFailurePolicy == constants.LogoPolicyFail:
			return nil, errors.Wrapf(service.ErrLogoUnavailable, "%s: %v", fields.LogoRef, err)
		default:
			p.logger.WarnContext(ctx, "Pass logo unavailable, packaging without it",
				slog.String("serial_number", fields.SerialNumber),
				slog.String("logo_ref", fields.LogoRef),
				slog.Any("error", err),
			)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	manifest, err := buildManifest(files)
	if err != nil {
		return nil, err
	}
	files[manifestFile] = manifest

	if p.signer != nil {
		signature, err := p.signer.Sign(ctx, manifest)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sign pass manifest")
		}
		if len(signature) > 0 {
			files[signatureFile] = signature
		}
	}

	data, err := writeArchive(files)
	if err != nil {
		return nil, err
	}

	return &service.PassArtifact{
		Data:        data,
		Filename:    constants.PassFilename,
		ContentType: constants.PassContentType,
		HasLogo:     hasLogo,
	}, nil
}

// renderPassJSON overlays the dynamic fields on the model pass.json.
func (p *packager) renderPassJSON(base []byte, fields service.PassFields) ([]byte, error) {
	pass := map[string]any{}
	if len(base) > 0 {
		if err := json.Unmarshal(base, &pass); err != nil {
			return nil, errors.Wrap(err, "invalid model pass.json")
		}
	}

	description := fields.Description
	if description == "" {
		description = p.cfg.Description
	}
	barcodeMessage := fields.BarcodeMessage
	if barcodeMessage == "" {
		barcodeMessage = fields.SerialNumber
	}

	pass["formatVersion"] = 1
	pass["passTypeIdentifier"] = p.cfg.PassTypeIdentifier
	pass["organizationName"] = p.cfg.OrganizationName
	pass["serialNumber"] = fields.SerialNumber
	pass["description"] = description
	pass["logoText"] = fields.RestaurantName
	if p.cfg.TeamIdentifier != "" {
		pass["teamIdentifier"] = p.cfg.TeamIdentifier
	}

	storeCard := map[string]any{
		"primaryFields": []map[string]any{
			{"key": "points", "label": "Points", "value": fields.Points},
		},
		"secondaryFields": []map[string]any{
			{"key": "visits", "label": "Visits", "value": fields.Visits},
		},
	}
	if fields.HolderName != "" {
		storeCard["auxiliaryFields"] = []map[string]any{
			{"key": "holder", "label": "Member", "value": fields.HolderName},
		}
	}
	pass["storeCard"] = storeCard

	barcode := map[string]any{
		"format":          "PKBarcodeFormatQR",
		"message":         barcodeMessage,
		"messageEncoding": "iso-8859-1",
	}
	pass["barcodes"] = []map[string]any{barcode}
	pass["barcode"] = barcode

	data, err := json.Marshal(pass)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode pass.json")
	}

	return data, nil
}

// normalizeLogo downloads the logo into scratch, then decodes it and re-encodes it
// as a square PNG of the configured size.
func (p *packager) normalizeLogo(ctx context.Context, scratch, ref string) ([]byte, error) {
	raw, err := p.images.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}

	srcPath := filepath.Join(scratch, "logo-source")
	if err := os.WriteFile(srcPath, raw, 0o600); err != nil {
		return nil, errors.Wrap(err, "failed to stage logo")
	}

	srcFile, err := os.Open(srcPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open staged logo")
	}
	defer srcFile.Close()

	header, _, err := image.DecodeConfig(srcFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read logo header")
	}
	if header.Width > maxLogoSourcePixels || header.Height > maxLogoSourcePixels {
		return nil, errors.Wrapf(errLogoTooLarge, "%dx%d", header.Width, header.Height)
	}
	if _, err := srcFile.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "failed to rewind staged logo")
	}

	src, _, err := image.Decode(srcFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode logo")
	}

	size := p.cfg.LogoSize
	if size <= 0 {
		size = defaultIconSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	outPath := filepath.Join(scratch, logoFile)
	outFile, err := os.Create(outPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create normalized logo")
	}
	if err := png.Encode(outFile, dst); err != nil {
		_ = outFile.Close()

		return nil, errors.Wrap(err, "failed to encode normalized logo")
	}
	if err := outFile.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read normalized logo")
	}

	return data, nil
}

// buildManifest maps every file name to the hex SHA-1 of its content.
func buildManifest(files map[string][]byte) ([]byte, error) {
	manifest := make(map[string]string, len(files))
	for name, data := range files {
		sum := sha1.Sum(data) //nolint:gosec
		manifest[name] = hex.EncodeToString(sum[:])
	}

	data, err := json.Marshal(manifest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode manifest")
	}

	return data, nil
}

func writeArchive(files map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: reproducibleModTime,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to add %s to bundle", name)
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s to bundle", name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize bundle")
	}

	return buf.Bytes(), nil
}
