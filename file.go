package rich

import (
	"os"

	"github.com/pkg/errors"
)

// File is a PE file loaded far enough into memory to expose its rich
// header. Nothing past the DOS region is parsed; the NT headers and
// everything after them are out of scope for this library.
type File struct {
	DOSHeader
	RichHeader *RichHeader

	data []byte
}

// NewFile reads filename into memory, validates the DOS header, and
// parses the rich header if one is present.
func NewFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewFileFromBytes(data)
}

// NewFileFromBytes parses an in-memory PE image. A file without a
// recoverable rich header is not an error: RichHeader stays nil.
// Structurally broken headers (size that does not divide into whole
// entries, bad "DanS" word after unmasking) are reported, since they
// indicate corruption rather than absence.
func NewFileFromBytes(data []byte) (*File, error) {
	if len(data) < MinFileSize {
		return nil, ErrInvalidPESize
	}

	f := &File{data: data}

	hdr, err := parseDOSHeader(data)
	if err != nil {
		return nil, err
	}
	f.DOSHeader = hdr

	rh, err := ParseBytes(data)
	switch {
	case err == nil:
		f.RichHeader = rh
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAmbiguousSize):
		// Absent or unrecoverable header, a supported outcome.
	default:
		return nil, err
	}
	return f, nil
}

func (f *File) Size() uint32 {
	return uint32(len(f.data))
}

// Checksum recomputes the rich header XOR key from the file content.
// The linker derives the key from a rotate-sum over the bytes preceding
// the header (skipping the e_lfanew field) plus a rotate-sum of each
// entry dword by its object count. Returns 0 when no header was parsed.
func (f *File) Checksum() uint32 {
	if f.RichHeader == nil {
		return 0
	}

	checksum := f.RichHeader.DansOffset

	for i := uint32(0); i < f.RichHeader.DansOffset; i++ {
		// skip over dos e_lfanew field at offset 0x3C
		if i >= 0x3C && i < 0x40 {
			continue
		}
		b := uint32(f.data[i])
		checksum += (b << (i % 32)) | (b>>(32-(i%32)))&0xff
		checksum &= 0xFFFFFFFF
	}

	for _, p := range f.RichHeader.Products {
		c := p.compid()
		checksum += c<<(p.ObjectCount%32) | c>>(32-(p.ObjectCount%32))
		checksum &= 0xFFFFFFFF
	}
	return checksum
}

// ChecksumValid reports whether the stored XOR key matches the key
// recomputed from the file. A mismatch usually means the header or the
// DOS region was patched after linking.
func (f *File) ChecksumValid() bool {
	return f.RichHeader != nil && f.Checksum() == f.RichHeader.XorKey
}
