package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTipoNoPermitido  = errors.New("Solo se permiten imágenes (jpeg, jpg, png, webp, tiff, jfif)")
	ErrArchivoMuyGrande = errors.New("El archivo supera el tamaño máximo de 5MB")
)

// 扩展名与声明 MIME 的子类型共用同一张白名单
var allowedImageTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"webp": true,
	"tiff": true,
	"jfif": true,
}

const DefaultMaxUploadSize = 5 * 1024 * 1024 // 5 MiB

// MediaGate 校验上传文件并以唯一名字落盘
type MediaGate struct {
	dir     string
	maxSize int64
}

// NewMediaGate ensures dir exists and returns the gate. maxSize <= 0
// falls back to DefaultMaxUploadSize.
func NewMediaGate(dir string, maxSize int64) (*MediaGate, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &MediaGate{dir: dir, maxSize: maxSize}, nil
}

// Validate 先于任何落盘动作；扩展名与声明 MIME 需同时通过
func (g *MediaGate) Validate(filename, declaredMIME string, size int64) error {
	if size > g.maxSize {
		return ErrArchivoMuyGrande
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !allowedImageTypes[ext] {
		return ErrTipoNoPermitido
	}
	subtype := strings.ToLower(declaredMIME)
	if i := strings.Index(subtype, "/"); i >= 0 {
		subtype = subtype[i+1:]
	}
	if !allowedImageTypes[subtype] {
		return ErrTipoNoPermitido
	}
	return nil
}

// Save validates fh, writes its bytes under the upload root with a
// fresh collision-free name, and returns the public reference path
// (/uploads/<name>). Files are written once, never overwritten: the
// name carries the ingestion timestamp plus a random disambiguator and
// the file is opened with O_EXCL.
func (g *MediaGate) Save(fh *multipart.FileHeader) (string, error) {
	if err := g.Validate(fh.Filename, fh.Header.Get("Content-Type"), fh.Size); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(g.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return "/uploads/" + name, nil
}
