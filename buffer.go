package roaring

import (
	"unsafe"

	"github.com/kelindar/bitmap"
)

const (
	bmpSizeWords  = 1024 // 64-bit words in a bitmap container
	bmpSizeUint16 = 4096 // the same payload counted in uint16s
	bmpSizeBytes  = 8192 // the same payload counted in bytes
)

// asBitmap reinterprets a bitmap container payload as a 65536-bit vector.
func asBitmap(data []uint16) bitmap.Bitmap {
	if len(data) == 0 {
		return nil
	}

	return bitmap.Bitmap(unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4))
}

// asBytes reinterprets a payload as its backing bytes, used by the
// little-endian serialization fast path.
func asBytes(data []uint16) []byte {
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*2)
}
