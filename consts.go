package rich

// MinFileSize On Windows XP (x32) the smallest PE executable is 97 bytes.
const MinFileSize = 97

const (
	ImageDOSSignature   = 0x5A4D // MZ
	ImageDOSZMSignature = 0x4D5A // ZM
)

const (
	// DansSignature is the little-endian dword of the ASCII bytes "DanS",
	// the masked marker that begins the rich header region.
	DansSignature = 0x536E6144

	// RichSignature is the footer marker that ends the region. The dword
	// after it holds the XOR key.
	RichSignature = "Rich"
)

// DOSHeaderSize is the fixed size of IMAGE_DOS_HEADER. The rich header
// never starts inside it, so the locator skips it unconditionally
// instead of guessing at the DOS stub length.
const DOSHeaderSize = 64

const (
	// maskedHeaderSize is the fixed head of the cleartext region: the
	// masked signature word plus three reserved padding words.
	maskedHeaderSize = 16

	// productEntrySize is the wire size of one ProductEntry.
	productEntrySize = 8
)
