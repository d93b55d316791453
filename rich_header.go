package rich

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/samber/lo"
)

// ProductEntry is one toolchain usage record: which tool produced
// objects for the binary, which build of it, and how many objects.
type ProductEntry struct {
	BuildNumber uint16
	ProductID   uint16
	ObjectCount uint32
}

// compid returns the entry's first dword as stored on the wire, build
// number in the low half and product id in the high half.
func (p ProductEntry) compid() uint32 {
	return uint32(p.BuildNumber) | uint32(p.ProductID)<<16
}

// MaskedRichHeader is the cleartext head of the region once the key has
// been removed: the "DanS" marker, three reserved words (nominally
// zero), then the product entries in file order. Duplicate product ids
// are preserved as written by the linker.
type MaskedRichHeader struct {
	Signature uint32
	Padding   [3]uint32
	Products  []ProductEntry
}

// EntryCount derives how many product entries a masked region of the
// given size holds. The division must be exact: a size that does not
// divide into whole entries marks a corrupt or adversarial header and
// yields ErrInvalidSize rather than a truncated count.
func EntryCount(size uint32) (int, error) {
	if size < maskedHeaderSize || (size-maskedHeaderSize)%productEntrySize != 0 {
		return 0, ErrInvalidSize
	}
	return int((size - maskedHeaderSize) / productEntrySize), nil
}

// ParseMaskedHeader decodes an unmasked cleartext region produced by
// Unmask. The region must start with the "DanS" signature word.
func ParseMaskedHeader(clear []byte) (*MaskedRichHeader, error) {
	n, err := EntryCount(uint32(len(clear)))
	if err != nil {
		return nil, err
	}

	var hdr MaskedRichHeader
	r := bytes.NewReader(clear)
	if err := binary.Read(r, binary.LittleEndian, &hdr.Signature); err != nil {
		return nil, err
	}
	if hdr.Signature != DansSignature {
		return nil, ErrBadDansSignature
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr.Padding); err != nil {
		return nil, err
	}

	hdr.Products = make([]ProductEntry, n)
	if err := binary.Read(r, binary.LittleEndian, hdr.Products); err != nil {
		return nil, err
	}
	return &hdr, nil
}

// RichHeader ties a located region to its decoded content.
type RichHeader struct {
	XorKey     uint32
	DansOffset uint32
	Size       uint32
	Products   []ProductEntry

	// Raw holds the region as stored in the file, masked, including the
	// trailing "Rich" footer and key.
	Raw []byte

	clear []byte
}

// ParseBytes runs the full pipeline over an in-memory buffer: locate
// the footer, derive the size, unmask into a fresh buffer, and decode
// the entries. The input is never modified.
func ParseBytes(data []byte) (*RichHeader, error) {
	loc, err := Locate(data)
	if err != nil {
		return nil, err
	}

	clear, err := UnmaskCopy(data, loc)
	if err != nil {
		return nil, err
	}

	hdr, err := ParseMaskedHeader(clear)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, loc.Size+8)
	copy(raw, data[loc.Offset:uint64(loc.Offset)+uint64(loc.Size)+8])

	return &RichHeader{
		XorKey:     loc.XorKey,
		DansOffset: loc.Offset,
		Size:       loc.Size,
		Products:   hdr.Products,
		Raw:        raw,
		clear:      clear,
	}, nil
}

// ObjectCountByProduct sums object counts per product id. The header
// itself keeps duplicate entries in file order; aggregation is opt-in.
func (rh *RichHeader) ObjectCountByProduct() map[uint16]uint32 {
	grouped := lo.GroupBy(rh.Products, func(p ProductEntry) uint16 { return p.ProductID })
	return lo.MapValues(grouped, func(ps []ProductEntry, _ uint16) uint32 {
		return lo.SumBy(ps, func(p ProductEntry) uint32 { return p.ObjectCount })
	})
}

// RichHash is the MD5 of the cleartext region, the fingerprint commonly
// used to cluster samples built with the same toolchain mix.
func (rh *RichHeader) RichHash() string {
	return fmt.Sprintf("%x", md5.Sum(rh.clear))
}
