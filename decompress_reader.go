package lzutf8

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
// A nil reader returns ErrInvalidInput.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if r == nil {
		return nil, ErrInvalidInput
	}

	src, err := readAll(r, opts.maxInput())
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}

// CompressFromReader reads the full stream then calls Compress.
// A nil reader returns ErrInvalidInput.
func CompressFromReader(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrInvalidInput
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Compress(src), nil
}

// readAll reads r to EOF, stopping early with ErrInputTooLarge once more than limit
// bytes arrive. Zero limit means unlimited.
func readAll(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	src, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}

	if len(src) > limit {
		return nil, ErrInputTooLarge
	}

	return src, nil
}
