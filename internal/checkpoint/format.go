// Package checkpoint saves and restores trained parameters in the .grad
// binary format.
//
// A .grad file starts with a small fixed prefix followed by a JSON header
// and the raw tensor data:
//
//	magic "GRAD"  (4 bytes)
//	version       (4 bytes, little-endian)
//	header size   (8 bytes, little-endian)
//	header JSON   (variable)
//	padding       (to 64-byte boundary)
//	tensor data   (float32 values, little-endian, in header order)
//
// All tensors are float32. Offsets in the header are relative to the start
// of the data section.
package checkpoint

import "time"

const (
	magicBytes      = "GRAD"
	formatVersion   = 1
	headerAlignment = 64
)

// Header is the JSON header of a .grad file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
}
