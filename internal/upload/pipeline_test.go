package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	domainerrors "cityportal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFile struct {
	name        string
	contentType string
	content     string
}

func buildHeaders(t *testing.T, files ...fakeFile) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(part, file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"]
}

type recordingStore struct {
	saved   map[string]string
	deleted []string
	failKey string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{saved: make(map[string]string)}
}

func (s *recordingStore) Save(_ context.Context, key, _ string, r io.Reader) error {
	if s.failKey != "" && strings.Contains(key, s.failKey) {
		return assert.AnError
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.saved[key] = string(content)

	return nil
}

func (s *recordingStore) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.saved, key)

	return nil
}

func fixedClock(p *Pipeline) {
	p.now = func() time.Time { return time.UnixMilli(1700000000000) }
	p.randInt = func() int64 { return 424242 }
}

func requireValidationError(t *testing.T, err error, fragment string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), fragment)
}

func TestDocumentPipelineAcceptsAndRenames(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewDocumentPipeline(store)
	fixedClock(pipeline)

	headers := buildHeaders(t, fakeFile{
		name:        "Annual Report (2024).PDF",
		contentType: "application/pdf",
		content:     "report body",
	})

	stored, err := pipeline.ProcessOne(context.Background(), headers[0])
	require.NoError(t, err)

	// Sanitization lowercases the original name and replaces every
	// non-alphanumeric rune except the extension dot.
	assert.Equal(t, "documents/1700000000000-annual-report--2024-.pdf", stored.Key)
	assert.Equal(t, "Annual Report (2024).PDF", stored.OriginalName)
	assert.Equal(t, "report body", store.saved[stored.Key])
}

func TestDocumentPipelineRejectsExtension(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewDocumentPipeline(store)

	headers := buildHeaders(t, fakeFile{
		name:        "malware.exe",
		contentType: "application/octet-stream",
		content:     "MZ",
	})

	_, err := pipeline.ProcessOne(context.Background(), headers[0])
	requireValidationError(t, err, `extension "exe"`)
	assert.Empty(t, store.saved)
}

func TestDocumentPipelineRejectsMIME(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewDocumentPipeline(store)

	headers := buildHeaders(t, fakeFile{
		name:        "notes.txt",
		contentType: "image/png",
		content:     "x",
	})

	_, err := pipeline.ProcessOne(context.Background(), headers[0])
	requireValidationError(t, err, `content type "image/png"`)
	assert.Empty(t, store.saved)
}

func TestPipelineRejectsOversizedFile(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewDocumentPipeline(store)
	pipeline.rules.MaxFileBytes = 8

	headers := buildHeaders(t, fakeFile{
		name:        "big.pdf",
		contentType: "application/pdf",
		content:     "more than eight bytes",
	})

	_, err := pipeline.ProcessOne(context.Background(), headers[0])
	requireValidationError(t, err, "exceeds the 8 B size limit")
	assert.Empty(t, store.saved)
}

func TestCollaborationPipelineEnforcesFileCap(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewCollaborationAttachmentPipeline(store)

	files := make([]fakeFile, 6)
	for i := range files {
		files[i] = fakeFile{name: "a.bin", contentType: "application/octet-stream", content: "x"}
	}

	_, err := pipeline.Process(context.Background(), buildHeaders(t, files...))
	requireValidationError(t, err, "too many files: 6 exceeds the limit of 5")
	assert.Empty(t, store.saved)
}

func TestCollaborationPipelineAcceptsAnyType(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewCollaborationAttachmentPipeline(store)
	fixedClock(pipeline)

	stored, err := pipeline.Process(context.Background(), buildHeaders(t,
		fakeFile{name: "proposal.exe", contentType: "application/octet-stream", content: "1"},
		fakeFile{name: "photo.jpg", contentType: "image/jpeg", content: "2"},
	))
	require.NoError(t, err)
	require.Len(t, stored, 2)

	for _, upload := range stored {
		assert.True(t, strings.HasPrefix(upload.Key, "collaborations/"))
	}
}

func TestGalleryPipelineRejectsNonImage(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewGalleryImagePipeline(store)

	headers := buildHeaders(t, fakeFile{
		name:        "cover.pdf",
		contentType: "application/pdf",
		content:     "x",
	})

	_, err := pipeline.ProcessOne(context.Background(), headers[0])
	requireValidationError(t, err, "allowed extensions are jpg, jpeg, png, gif, webp")
	assert.Empty(t, store.saved)
}

func TestGenericNameStripsTraversal(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewGalleryImagePipeline(store)
	fixedClock(pipeline)

	headers := buildHeaders(t, fakeFile{
		name:        `..\..\etc\passwd.png`,
		contentType: "image/png",
		content:     "x",
	})

	stored, err := pipeline.ProcessOne(context.Background(), headers[0])
	require.NoError(t, err)

	// Only the extension of the original name survives.
	assert.Equal(t, "galleries/1700000000000-424242.png", stored.Key)
}

func TestProcessRejectsEmptySet(t *testing.T) {
	pipeline := NewCollaborationAttachmentPipeline(newRecordingStore())

	_, err := pipeline.Process(context.Background(), nil)
	requireValidationError(t, err, "no file provided")

	_, err = pipeline.ProcessOne(context.Background(), nil)
	requireValidationError(t, err, "no file provided")
}

func TestProcessRollsBackOnPersistFailure(t *testing.T) {
	store := newRecordingStore()
	pipeline := NewCollaborationAttachmentPipeline(store)

	var millis int64 = 1700000000000
	pipeline.now = func() time.Time {
		millis++

		return time.UnixMilli(millis)
	}
	pipeline.randInt = func() int64 { return 7 }
	store.failKey = "1700000000002-7"

	_, err := pipeline.Process(context.Background(), buildHeaders(t,
		fakeFile{name: "one.txt", contentType: "text/plain", content: "1"},
		fakeFile{name: "two.txt", contentType: "text/plain", content: "2"},
	))
	require.Error(t, err)

	// The first file was written, then removed when the second save failed.
	assert.Empty(t, store.saved)
	require.Len(t, store.deleted, 1)
	assert.Contains(t, store.deleted[0], "1700000000001-7")
}
