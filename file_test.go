package rich

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileFromBytes(t *testing.T) {
	entries := []ProductEntry{
		{BuildNumber: 0x5EB5, ProductID: 0x0104, ObjectCount: 42},
	}
	data := buildImage(1024, 128, 0xAABBCCDD, entries)

	f, err := NewFileFromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, uint16(ImageDOSSignature), f.Magic)
	assert.Equal(t, uint32(1024), f.Size())
	require.NotNil(t, f.RichHeader)
	assert.Equal(t, uint32(0xAABBCCDD), f.RichHeader.XorKey)
	assert.Equal(t, entries, f.RichHeader.Products)
}

func TestNewFileFromBytes_NoRichHeader(t *testing.T) {
	data := make([]byte, 256)
	binary.LittleEndian.PutUint16(data, ImageDOSSignature)
	binary.LittleEndian.PutUint32(data[0x3C:], 128)

	f, err := NewFileFromBytes(data)
	require.NoError(t, err)
	assert.Nil(t, f.RichHeader)
	assert.False(t, f.ChecksumValid())
	assert.Zero(t, f.Checksum())
}

func TestNewFileFromBytes_Invalid(t *testing.T) {
	badMagic := buildImage(1024, 128, 0xAABBCCDD, nil)
	badMagic[0] = 'X'

	badNewEXE := buildImage(1024, 128, 0xAABBCCDD, nil)
	binary.LittleEndian.PutUint32(badNewEXE[0x3C:], 0)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "smaller than tiny PE", data: make([]byte, MinFileSize-1), wantErr: ErrInvalidPESize},
		{name: "bad DOS magic", data: badMagic, wantErr: ErrInvalidDOSHeader},
		{name: "bad e_lfanew", data: badNewEXE, wantErr: ErrInvalidNewEXE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileFromBytes(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewFile(t *testing.T) {
	data := buildImage(1024, 128, 0xAABBCCDD, []ProductEntry{
		{BuildNumber: 0x5EB5, ProductID: 0x0104, ObjectCount: 42},
	})
	path := filepath.Join(t.TempDir(), "sample.exe")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.RichHeader)
	assert.Equal(t, uint32(128), f.RichHeader.DansOffset)
	assert.Equal(t, uint32(24), f.RichHeader.Size)

	_, err = NewFile(filepath.Join(t.TempDir(), "missing.exe"))
	assert.Error(t, err)
}

func TestFile_ChecksumValid(t *testing.T) {
	entries := []ProductEntry{
		{BuildNumber: 0x5EB5, ProductID: 0x0104, ObjectCount: 42},
		{BuildNumber: 0x685B, ProductID: 0x0093, ObjectCount: 5},
	}

	// The checksum depends only on the bytes before the header and the
	// decoded entries, never on the key itself, so it can be computed
	// from a first parse and used as the key of a second image.
	probe, err := NewFileFromBytes(buildImage(1024, 128, 0x11111111, entries))
	require.NoError(t, err)
	key := probe.Checksum()

	f, err := NewFileFromBytes(buildImage(1024, 128, key, entries))
	require.NoError(t, err)
	require.NotNil(t, f.RichHeader)
	assert.Equal(t, key, f.RichHeader.XorKey)
	assert.True(t, f.ChecksumValid())
}
