// Package upload gates user-submitted files before anything reaches storage.
// Each destination kind carries its own rule set; validation of count, size,
// extension and MIME type all happen before a single byte is persisted.
package upload

import (
	"context"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/service"
	"cityportal/internal/errors"
	"cityportal/internal/util"
)

const maxFileBytes = 10 << 20 // 10 MB

// Rules describes what a pipeline accepts and how it names stored files.
type Rules struct {
	// Prefix is the storage key prefix of this destination kind.
	Prefix string

	// AllowedExtensions whitelists case-folded extensions without the dot.
	// Empty means any extension is accepted.
	AllowedExtensions []string

	// AllowedMIMEPrefixes whitelists declared Content-Type prefixes.
	// Empty means any type is accepted.
	AllowedMIMEPrefixes []string

	// MaxFileBytes caps each individual file.
	MaxFileBytes int64

	// MaxFiles caps files per request.
	MaxFiles int

	// DocumentNaming keeps a sanitized form of the original name in the
	// stored key instead of the generic random name.
	DocumentNaming bool
}

// Pipeline validates a multipart file set against its Rules and writes the
// accepted files through the FileStore.
type Pipeline struct {
	rules Rules
	store service.FileStore

	now     func() time.Time
	randInt func() int64
}

// NewPipeline builds a pipeline with the given rules.
func NewPipeline(rules Rules, store service.FileStore) *Pipeline {
	return &Pipeline{
		rules:   rules,
		store:   store,
		now:     time.Now,
		randInt: func() int64 { return rand.Int63n(1_000_000_000) },
	}
}

// NewCollaborationAttachmentPipeline accepts up to five files of any type.
func NewCollaborationAttachmentPipeline(store service.FileStore) *Pipeline {
	return NewPipeline(Rules{
		Prefix:       "collaborations",
		MaxFileBytes: maxFileBytes,
		MaxFiles:     5,
	}, store)
}

// NewDocumentPipeline accepts a single office-style document and keeps a
// sanitized form of its original name.
func NewDocumentPipeline(store service.FileStore) *Pipeline {
	return NewPipeline(Rules{
		Prefix:              "documents",
		AllowedExtensions:   []string{"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "csv"},
		AllowedMIMEPrefixes: []string{"application/", "text/"},
		MaxFileBytes:        maxFileBytes,
		MaxFiles:            1,
		DocumentNaming:      true,
	}, store)
}

// NewGalleryImagePipeline accepts a single web image.
func NewGalleryImagePipeline(store service.FileStore) *Pipeline {
	return NewPipeline(Rules{
		Prefix:              "galleries",
		AllowedExtensions:   []string{"jpg", "jpeg", "png", "gif", "webp"},
		AllowedMIMEPrefixes: []string{"image/"},
		MaxFileBytes:        maxFileBytes,
		MaxFiles:            1,
	}, store)
}

// Process validates every file, then persists them. Nothing is written until
// the whole set has passed validation; if a later write fails, the writes
// already made for this request are rolled back.
func (p *Pipeline) Process(ctx context.Context, files []*multipart.FileHeader) ([]entity.StoredUpload, error) {
	if len(files) == 0 {
		return nil, domainerrors.NewValidationError("no file provided")
	}
	if p.rules.MaxFiles > 0 && len(files) > p.rules.MaxFiles {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("too many files: %d exceeds the limit of %d", len(files), p.rules.MaxFiles))
	}

	for _, header := range files {
		if err := p.validate(header); err != nil {
			return nil, err
		}
	}

	stored := make([]entity.StoredUpload, 0, len(files))
	for _, header := range files {
		upload, err := p.persist(ctx, header)
		if err != nil {
			p.rollback(ctx, stored)

			return nil, err
		}
		stored = append(stored, upload)
	}

	return stored, nil
}

// ProcessOne is Process for single-file pipelines.
func (p *Pipeline) ProcessOne(ctx context.Context, header *multipart.FileHeader) (*entity.StoredUpload, error) {
	if header == nil {
		return nil, domainerrors.NewValidationError("no file provided")
	}

	stored, err := p.Process(ctx, []*multipart.FileHeader{header})
	if err != nil {
		return nil, err
	}

	return &stored[0], nil
}

func (p *Pipeline) validate(header *multipart.FileHeader) error {
	name := header.Filename

	if p.rules.MaxFileBytes > 0 && header.Size > p.rules.MaxFileBytes {
		return domainerrors.NewValidationError(fmt.Sprintf(
			"file %q is %s, which exceeds the %s size limit",
			name, util.FormatBytes(header.Size), util.FormatBytes(p.rules.MaxFileBytes)))
	}

	if len(p.rules.AllowedExtensions) > 0 {
		ext := normalizedExtension(name)
		if !contains(p.rules.AllowedExtensions, ext) {
			return domainerrors.NewValidationError(fmt.Sprintf(
				"file %q has extension %q, allowed extensions are %s",
				name, ext, strings.Join(p.rules.AllowedExtensions, ", ")))
		}
	}

	if len(p.rules.AllowedMIMEPrefixes) > 0 {
		contentType := header.Header.Get("Content-Type")
		if !hasAnyPrefix(contentType, p.rules.AllowedMIMEPrefixes) {
			return domainerrors.NewValidationError(fmt.Sprintf(
				"file %q has content type %q, allowed types are %s",
				name, contentType, strings.Join(p.rules.AllowedMIMEPrefixes, ", ")))
		}
	}

	return nil
}

func (p *Pipeline) persist(ctx context.Context, header *multipart.FileHeader) (entity.StoredUpload, error) {
	var name string
	if p.rules.DocumentNaming {
		name = p.documentName(header.Filename)
	} else {
		name = p.genericName(header.Filename)
	}
	key := p.rules.Prefix + "/" + name

	src, err := header.Open()
	if err != nil {
		return entity.StoredUpload{}, errors.Wrapf(err, "open uploaded file %s", header.Filename)
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	if err := p.store.Save(ctx, key, contentType, src); err != nil {
		return entity.StoredUpload{}, errors.Wrapf(err, "store uploaded file %s", header.Filename)
	}

	return entity.StoredUpload{
		Key:          key,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    header.Size,
	}, nil
}

// rollback removes files already written for a request that ultimately failed.
func (p *Pipeline) rollback(ctx context.Context, stored []entity.StoredUpload) {
	for _, upload := range stored {
		_ = p.store.Delete(ctx, upload.Key)
	}
}

// genericName derives `<epoch-millis>-<random-int>.<ext>`. The original name
// contributes only its extension, so traversal-shaped names cannot escape the
// destination prefix.
func (p *Pipeline) genericName(originalName string) string {
	ext := normalizedExtension(originalName)
	name := fmt.Sprintf("%d-%d", p.now().UnixMilli(), p.randInt())
	if ext != "" {
		name += "." + ext
	}

	return name
}

// documentName derives `<epoch-millis>-<sanitized-lowercased-original>`.
// Every non-alphanumeric rune except the final extension dot becomes "-".
func (p *Pipeline) documentName(originalName string) string {
	base := strings.ToLower(path.Base(normalizeSeparators(originalName)))
	ext := ""
	if idx := strings.LastIndex(base, "."); idx > 0 {
		ext = base[idx:]
		base = base[:idx]
	}

	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return '-'
	}, base)

	return fmt.Sprintf("%d-%s%s", p.now().UnixMilli(), sanitized, ext)
}

// normalizedExtension returns the case-folded extension without the dot.
func normalizedExtension(name string) string {
	ext := path.Ext(normalizeSeparators(name))
	if ext == "" {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// normalizeSeparators rewrites Windows-style separators so path.Base strips
// any client-supplied directory component.
func normalizeSeparators(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}

func hasAnyPrefix(value string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}

	return false
}
