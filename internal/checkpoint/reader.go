package checkpoint

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/grad/internal/tensor"
)

// Load reads a .grad file and returns its state dictionary and header.
//
// The returned tensors are untracked leaves.
func Load(path string) (map[string]*tensor.Tensor, *Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadFrom(bufio.NewReader(file))
}

// ReadFrom reads a .grad state dictionary from an io.Reader.
func ReadFrom(r io.Reader) (map[string]*tensor.Tensor, *Header, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, nil, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != magicBytes {
		return nil, nil, fmt.Errorf("invalid magic bytes: got %q, want %q", magic, magicBytes)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version != formatVersion {
		return nil, nil, fmt.Errorf("unsupported format version: %d", version)
	}

	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header: %w", err)
	}

	pos := int64(4+4+8) + int64(headerSize)
	padding := (headerAlignment - (pos % headerAlignment)) % headerAlignment
	if padding > 0 {
		if _, err := io.CopyN(io.Discard, r, padding); err != nil {
			return nil, nil, fmt.Errorf("failed to skip padding: %w", err)
		}
	}

	stateDict := make(map[string]*tensor.Tensor, len(header.Tensors))
	buf := make([]byte, 4)
	for _, meta := range header.Tensors {
		shape := tensor.Shape(meta.Shape)
		if err := shape.Validate(); err != nil {
			return nil, nil, fmt.Errorf("tensor %s: %w", meta.Name, err)
		}
		n := shape.NumElements()
		if int64(n)*4 != meta.Size {
			return nil, nil, fmt.Errorf("tensor %s: size %d does not match shape %v", meta.Name, meta.Size, meta.Shape)
		}

		data := make([]float32, n)
		for i := range data {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, nil, fmt.Errorf("failed to read tensor %s: %w", meta.Name, err)
			}
			data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf))
		}

		t, err := tensor.FromSlice(data, shape)
		if err != nil {
			return nil, nil, fmt.Errorf("tensor %s: %w", meta.Name, err)
		}
		stateDict[meta.Name] = t
	}

	return stateDict, &header, nil
}

// LoadInto reads a .grad file and copies each stored tensor into the
// matching entry of stateDict. Every stored tensor must exist in stateDict
// with the same shape; extra entries in stateDict are left untouched.
func LoadInto(path string, stateDict map[string]*tensor.Tensor) error {
	loaded, _, err := Load(path)
	if err != nil {
		return err
	}

	for name, src := range loaded {
		dst, ok := stateDict[name]
		if !ok {
			return fmt.Errorf("unexpected tensor %q in checkpoint", name)
		}
		if !dst.Shape().Equal(src.Shape()) {
			return fmt.Errorf("tensor %q: shape %v does not match %v", name, src.Shape(), dst.Shape())
		}
		copy(dst.Data(), src.Data())
	}

	return nil
}
