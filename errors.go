package rich

import "github.com/pkg/errors"

var (
	ErrInvalidPESize    = errors.New("not a PE file, smaller than tiny PE")
	ErrInvalidDOSHeader = errors.New("invalid PE file signature")
	ErrInvalidNewEXE    = errors.New("invalid e_lfanew value. Probably not a PE file")
)

var (
	// ErrNotFound reports that no "Rich" footer exists in the scanned
	// region. PE files built without the Microsoft toolchain hit this
	// routinely; it is an expected outcome, not a parse failure.
	ErrNotFound = errors.New("rich header not found")

	// ErrAmbiguousSize reports a footer whose masked "DanS" marker could
	// not be recovered by scanning backward under the footer key. Either
	// the header is non-standard or the footer match was a false
	// positive on unrelated bytes.
	ErrAmbiguousSize = errors.New("rich header size could not be calculated")

	// ErrInvalidSize reports a region whose size does not divide into
	// whole entries. Truncating instead would silently drop or misalign
	// entries, so the region is rejected outright.
	ErrInvalidSize = errors.New("rich header size does not divide into whole entries")

	ErrBadDansSignature = errors.New("unmasked region does not start with the DanS signature")
	ErrOutsideBoundary  = errors.New("reading data outside boundary")
)
