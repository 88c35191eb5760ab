package service

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader 构造一个真实的 multipart.FileHeader
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestMediaGateValidate(t *testing.T) {
	gate, err := NewMediaGate(t.TempDir(), 0)
	require.NoError(t, err)

	assert.NoError(t, gate.Validate("foto.png", "image/png", 100))
	assert.NoError(t, gate.Validate("FOTO.JPG", "image/jpeg", 100))
	assert.NoError(t, gate.Validate("scan.jfif", "image/jfif", 100))

	assert.ErrorIs(t, gate.Validate("doc.pdf", "application/pdf", 100), ErrTipoNoPermitido)
	// 扩展名与声明 MIME 都要过白名单
	assert.ErrorIs(t, gate.Validate("foto.png", "application/octet-stream", 100), ErrTipoNoPermitido)
	assert.ErrorIs(t, gate.Validate("script.png.exe", "image/png", 100), ErrTipoNoPermitido)

	assert.ErrorIs(t, gate.Validate("foto.png", "image/png", DefaultMaxUploadSize+1), ErrArchivoMuyGrande)
}

func TestMediaGateRejectionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	gate, err := NewMediaGate(dir, 0)
	require.NoError(t, err)

	_, err = gate.Save(fileHeader(t, "doc.pdf", "application/pdf", []byte("x")))
	assert.ErrorIs(t, err, ErrTipoNoPermitido)
	assert.Empty(t, dirEntries(t, dir))

	gate, err = NewMediaGate(dir, 8)
	require.NoError(t, err)
	_, err = gate.Save(fileHeader(t, "foto.png", "image/png", []byte("123456789")))
	assert.ErrorIs(t, err, ErrArchivoMuyGrande)
	assert.Empty(t, dirEntries(t, dir))
}

func TestMediaGateSaveAssignsFreshNames(t *testing.T) {
	dir := t.TempDir()
	gate, err := NewMediaGate(dir, 0)
	require.NoError(t, err)

	first, err := gate.Save(fileHeader(t, "foto.png", "image/png", []byte("uno")))
	require.NoError(t, err)
	second, err := gate.Save(fileHeader(t, "foto.png", "image/png", []byte("dos")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "/uploads/"))
	assert.True(t, strings.HasSuffix(first, ".png"))
	// 原名从不复用，同名上传也各得其所
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "foto")
	assert.Len(t, dirEntries(t, dir), 2)
}
