package rich

import (
	"bytes"
	"encoding/binary"
)

// DOSHeader is the legacy IMAGE_DOS_HEADER that opens every PE file.
// Only Magic and AddressOfNewEXEHeader matter here; the remaining
// fields are carried so the full 64 bytes decode in one binary.Read.
type DOSHeader struct {
	Magic                    uint16
	BytesOnLastPageOfFile    uint16
	PagesInFile              uint16
	Relocations              uint16
	SizeOfHeader             uint16
	MinExtraParagraphsNeeded uint16
	MaxExtraParagraphsNeeded uint16
	InitialSS                uint16
	InitialSP                uint16
	Checksum                 uint16
	InitialIP                uint16
	InitialCS                uint16
	AddressOfRelocationTable uint16
	OverlayNumber            uint16
	ReservedWords1           [4]uint16
	OEMIdentifier            uint16
	OEMInformation           uint16
	ReservedWords2           [10]uint16
	AddressOfNewEXEHeader    uint32
}

func parseDOSHeader(data []byte) (DOSHeader, error) {
	var hdr DOSHeader
	if len(data) < DOSHeaderSize {
		return hdr, ErrOutsideBoundary
	}

	r := bytes.NewReader(data[:DOSHeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return hdr, err
	}

	if hdr.Magic != ImageDOSSignature && hdr.Magic != ImageDOSZMSignature {
		return hdr, ErrInvalidDOSHeader
	}

	if hdr.AddressOfNewEXEHeader < 4 || hdr.AddressOfNewEXEHeader > uint32(len(data)) {
		return hdr, ErrInvalidNewEXE
	}
	return hdr, nil
}
