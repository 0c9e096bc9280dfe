// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is the suffix of files that OpenInput decompresses.
const ZstdExt = ".zst"

// OpenInput opens path for reading. "-" is stdin. Files ending in ZstdExt
// are decompressed as they are read.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	if !strings.HasSuffix(path, ZstdExt) {
		return f, nil
	}
	decoder, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &zstdReadCloser{Decoder: decoder, f: f}, nil
}

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

func ZstdCompress(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dstFile.Close()

	encoder, err := zstd.NewWriter(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	if _, err := io.Copy(encoder, srcFile); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to compress file: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush zstd encoder: %w", err)
	}
	return dstFile.Close()
}
