// Package serialization saves and loads named float64 parameter tensors in
// the SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, tensor name -> {dtype, shape, data_offsets}]
//	  [Tensor data: raw little-endian bytes]
//
// Tensors are stored as F64 in alphabetical order by name. The writer records
// a SHA-256 checksum of the data section in the "sha256" metadata entry and
// the reader verifies it when present.
//
// Example usage:
//
//	tensors := map[string]serialization.Tensor{
//	    "layers.0.weight": {Shape: []int{16, 2}, Data: w},
//	    "layers.0.bias":   {Shape: []int{16}, Data: b},
//	}
//	if err := serialization.Save("model.safetensors", tensors, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	tensors, meta, err := serialization.Load("model.safetensors")
package serialization
