package rom

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage returns a 32 KiB cartridge image with a valid header.
func testImage(title string, cgb byte) []byte {
	img := make([]byte, 0x8000)
	copy(img[titleAddress:], title)
	img[cgbFlagAddress] = cgb
	img[cartridgeTypeAddress] = 0x01
	img[romSizeAddress] = 0x01
	img[ramSizeAddress] = 0x02
	img[versionAddress] = 0x03
	img[globalChecksumAddress] = 0xBE
	img[globalChecksumAddress+1] = 0xEF
	img[headerChecksumAddress] = HeaderChecksum(img)
	return img
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	img := testImage("KOLORFUL", CGBOnly)

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(img)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var zipped bytes.Buffer
	zw := zip.NewWriter(&zipped)
	_, err = zw.Create("roms/")
	require.NoError(t, err)
	w, err := zw.Create("roms/game.gbc")
	require.NoError(t, err)
	_, err = w.Write(img)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	tests := []struct {
		name string
		data []byte
	}{
		{"game.gbc", img},
		{"game.gb", img},
		{"game", img},
		{"game.GB.gz", gz.Bytes()},
		{"game.zip", zipped.Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.name, tt.data))
			require.NoError(t, err)
			assert.Equal(t, img, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gb"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "broken.gz", []byte("not gzip")))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.7z", []byte("not 7z either")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.7z")

	var empty bytes.Buffer
	require.NoError(t, zip.NewWriter(&empty).Close())
	_, err = Load(writeFile(t, "empty.zip", empty.Bytes()))
	assert.ErrorIs(t, err, ErrEmptyArchive)
}

func TestLoadBoot(t *testing.T) {
	for _, size := range []int{DMGBootSize, CGBBootSize} {
		got, err := LoadBoot(writeFile(t, "boot.bin", make([]byte, size)))
		require.NoError(t, err)
		assert.Len(t, got, size)
	}

	_, err := LoadBoot(writeFile(t, "boot.bin", make([]byte, 300)))
	assert.ErrorContains(t, err, "unexpected size 300")
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader(testImage("POKEMON_CRYSTAL", CGBOnly))
	require.NoError(t, err)

	assert.Equal(t, "POKEMON_CRYSTAL", h.Title)
	assert.True(t, h.CGB())
	assert.Equal(t, "MBC1", h.CartridgeTypeName())
	assert.Equal(t, 64*1024, h.ROMSize())
	assert.Equal(t, 8*1024, h.RAMSize())
	assert.Equal(t, byte(0x03), h.Version)
	assert.Equal(t, uint16(0xBEEF), h.GlobalChecksum)

	h, err = ParseHeader(testImage("TETRIS", 0x00))
	require.NoError(t, err)
	assert.Equal(t, "TETRIS", h.Title)
	assert.False(t, h.CGB())

	_, err = ParseHeader(make([]byte, 0x100))
	assert.ErrorIs(t, err, ErrShortImage)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		raw  []byte
		want string
	}{
		{[]byte("ZELDA\x00\x00\x00"), "ZELDA"},
		{[]byte("  A B  "), "A B"},
		{[]byte{'X', 0x01, 0xE9, 'Y'}, "X??Y"},
		{[]byte{0, 0, 0}, "(Untitled)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanTitle(tt.raw))
	}
}

func TestVerify(t *testing.T) {
	img := testImage("CHECK", CGBCompatible)
	assert.NoError(t, Verify(img))

	img[titleAddress] ^= 0xFF
	assert.ErrorIs(t, Verify(img), ErrHeaderChecksum)
	assert.ErrorIs(t, Verify(img[:0x100]), ErrShortImage)
}

func TestFingerprint(t *testing.T) {
	a := testImage("A", 0)
	b := testImage("B", 0)

	assert.Equal(t, Fingerprint(a), Fingerprint(append([]byte(nil), a...)))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, "ef46db3751d8e999", FingerprintString(nil))
	assert.Len(t, FingerprintString(a), 16)
}
