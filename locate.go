package rich

import "encoding/binary"

// HeaderLocation describes the obfuscated rich header region inside a
// buffer. Offset is the position of the masked "DanS" word, Offset+Size
// is the position of the "Rich" footer, and XorKey is the 32-bit mask
// stored in the dword after the footer.
type HeaderLocation struct {
	Offset uint32
	Size   uint32
	XorKey uint32
}

// Locate scans data for the rich header footer and derives the start
// and size of the masked region preceding it.
//
// The header carries no length field, so the size has to be derived:
// scan forward for the literal "Rich" in 4-byte steps starting after
// the fixed 64-byte IMAGE_DOS_HEADER, take the dword after the match as
// the XOR key, then step backward from the footer XOR-ing each word
// with the key until the masked "DanS" marker decodes. The first
// forward match wins; a forged "Rich" in unrelated bytes before the
// real header is an accepted false-positive risk of the format.
//
// Returns ErrNotFound when no footer exists in the scanned region and
// ErrAmbiguousSize when a footer was matched but no consistent "DanS"
// word precedes it. Locate never modifies data.
func Locate(data []byte) (HeaderLocation, error) {
	// Both the signature and the key after it must be in bounds for a
	// candidate to be usable.
	footer := -1
	for i := DOSHeaderSize; i+8 <= len(data); i += 4 {
		if string(data[i:i+4]) == RichSignature {
			footer = i
			break
		}
	}
	if footer < 0 {
		return HeaderLocation{}, ErrNotFound
	}

	key := binary.LittleEndian.Uint32(data[footer+4:])
	for j := footer; j >= 0; j -= 4 {
		if binary.LittleEndian.Uint32(data[j:])^key == DansSignature {
			return HeaderLocation{
				Offset: uint32(j),
				Size:   uint32(footer - j),
				XorKey: key,
			}, nil
		}
	}
	return HeaderLocation{}, ErrAmbiguousSize
}
