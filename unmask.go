package rich

import "encoding/binary"

// Unmask deciphers the masked region described by loc into out by
// XOR-ing every 4-byte word with the footer key. out must be exactly
// loc.Size bytes long.
//
// out may alias data[loc.Offset:] to overwrite the masked region in
// place; the forward word-wise pass never reads a word it has already
// written. An aliased unmask requires exclusive access to the buffer
// for the duration of the call.
func Unmask(data []byte, loc HeaderLocation, out []byte) error {
	if loc.Size%4 != 0 {
		return ErrInvalidSize
	}
	if uint64(loc.Offset)+uint64(loc.Size) > uint64(len(data)) {
		return ErrOutsideBoundary
	}
	if uint32(len(out)) != loc.Size {
		return ErrOutsideBoundary
	}

	for i := uint32(0); i < loc.Size; i += 4 {
		word := binary.LittleEndian.Uint32(data[loc.Offset+i:]) ^ loc.XorKey
		binary.LittleEndian.PutUint32(out[i:], word)
	}
	return nil
}

// UnmaskCopy unmasks the region into a freshly allocated buffer,
// leaving data untouched.
func UnmaskCopy(data []byte, loc HeaderLocation) ([]byte, error) {
	out := make([]byte, loc.Size)
	if err := Unmask(data, loc, out); err != nil {
		return nil, err
	}
	return out, nil
}
