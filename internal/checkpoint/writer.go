package checkpoint

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/born-ml/grad/internal/tensor"
)

// Save writes a state dictionary to path in .grad format.
//
// The state dictionary maps parameter names to tensors. Tensors are written
// in sorted name order so the output is deterministic. metadata may be nil.
func Save(path string, stateDict map[string]*tensor.Tensor, metadata map[string]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := WriteTo(w, stateDict, metadata); err != nil {
		return err
	}
	return w.Flush()
}

// WriteTo writes a state dictionary to an io.Writer in .grad format.
func WriteTo(w io.Writer, stateDict map[string]*tensor.Tensor, metadata map[string]string) error {
	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: formatVersion,
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(names)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	var offset int64
	for _, name := range names {
		t := stateDict[name]
		size := int64(t.NumElements()) * 4
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			Shape:  []int(t.Shape()),
			Offset: offset,
			Size:   size,
		})
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if _, err := w.Write([]byte(magicBytes)); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Pad so the data section starts on a 64-byte boundary.
	pos := int64(4+4+8) + int64(len(headerJSON))
	padding := (headerAlignment - (pos % headerAlignment)) % headerAlignment
	if padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	buf := make([]byte, 4)
	for _, name := range names {
		for _, v := range stateDict[name].Data() {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("failed to write tensor %s: %w", name, err)
			}
		}
	}

	return nil
}
