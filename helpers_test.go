package rich

import (
	"encoding/binary"
)

// buildClearRegion lays out a cleartext header: the DanS word, three
// zero padding words, then the entries in order.
func buildClearRegion(entries []ProductEntry) []byte {
	buf := make([]byte, maskedHeaderSize+len(entries)*productEntrySize)
	binary.LittleEndian.PutUint32(buf, DansSignature)
	for i, e := range entries {
		off := maskedHeaderSize + i*productEntrySize
		binary.LittleEndian.PutUint16(buf[off:], e.BuildNumber)
		binary.LittleEndian.PutUint16(buf[off+2:], e.ProductID)
		binary.LittleEndian.PutUint32(buf[off+4:], e.ObjectCount)
	}
	return buf
}

// writeRichRegion masks clear with key word by word, writes it into
// buf at offset, and appends the "Rich" footer and the key.
func writeRichRegion(buf []byte, offset int, clear []byte, key uint32) {
	for i := 0; i < len(clear); i += 4 {
		word := binary.LittleEndian.Uint32(clear[i:]) ^ key
		binary.LittleEndian.PutUint32(buf[offset+i:], word)
	}
	copy(buf[offset+len(clear):], RichSignature)
	binary.LittleEndian.PutUint32(buf[offset+len(clear)+4:], key)
}

// buildImage makes a minimal PE-shaped buffer: MZ magic, a plausible
// e_lfanew, and a masked rich header region starting at dansOffset.
func buildImage(total, dansOffset int, key uint32, entries []ProductEntry) []byte {
	buf := make([]byte, total)
	binary.LittleEndian.PutUint16(buf, ImageDOSSignature)
	binary.LittleEndian.PutUint32(buf[0x3C:], uint32(total-4))
	writeRichRegion(buf, dansOffset, buildClearRegion(entries), key)
	return buf
}
