package rich

// vsRange maps a contiguous span of product ids to the Visual Studio
// release that shipped them. Bounds are inclusive on both ends and
// overlap at the edges; evaluation order decides ties.
type vsRange struct {
	low, high uint16
	label     string
}

// Ranges ordered newest to oldest, bounds kept exactly as the known
// toolchain surveys record them. The 0x0019-0x0045 span and the low
// Visual Studio 6.0 ids overlap numerically; the fixed evaluation
// order below resolves it, so the bounds must not be normalized.
var vsRanges = []vsRange{
	{0x0106, 0x010a, "Visual Studio 2017 14.01+"},
	{0x00fd, 0x0106, "Visual Studio 2015 14.00"},
	{0x00eb, 0x00fd, "Visual Studio 2013 12.10"},
	{0x00d9, 0x00eb, "Visual Studio 2013 12.00"},
	{0x00c7, 0x00d9, "Visual Studio 2012 11.00"},
	{0x00b5, 0x00c7, "Visual Studio 2010 10.10"},
	{0x0098, 0x00b5, "Visual Studio 2010 10.00"},
	{0x0083, 0x0098, "Visual Studio 2008 09.00"},
	{0x006d, 0x0083, "Visual Studio 2005 08.00"},
	{0x005a, 0x006d, "Visual Studio 2003 07.10"},
	{0x0019, 0x0045, "Visual Studio 2002 07.00"},
}

// ProductVSVersion resolves a product id to the Visual Studio release
// it belongs to, first matching range wins. Total over the 16-bit
// domain; ids matching no range yield "".
func ProductVSVersion(id uint16) string {
	for _, r := range vsRanges {
		if id >= r.low && id <= r.high {
			return r.label
		}
	}
	if (id >= 0xA && id <= 0xD) || (id >= 0x15 && id <= 0x16) {
		return "Visual Studio 6.0 06.00"
	}
	if id == 0x2 || id == 0x6 || id == 0xC || id == 0xE {
		return "Visual Studio 97 05.00"
	}
	if id == 1 {
		return "Visual Studio"
	}
	return ""
}
