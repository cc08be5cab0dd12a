package utils

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// UniqueImageName builds a stored filename from the current time, a random
// suffix, and the original extension. Collision resistance comes from the
// construction; no check against existing files is made.
func UniqueImageName(original string) string {
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int64N(1_000_000_000), filepath.Ext(original))
}

// SaveUploadedImage stores one uploaded image under dir and returns the
// generated filename.
func SaveUploadedImage(file multipart.File, header *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := UniqueImageName(header.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}
