package tagfs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/dendrascience/tagfs/catalog"
	"github.com/dendrascience/tagfs/tags"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	name    string
	raw     tags.RawTags
	payload []byte
}

// newTestFS writes the fixtures below a temporary source directory, scans it
// and returns the filesystem together with the source directory.
func newTestFS(t *testing.T, fixtures ...fixture) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	for _, fx := range fixtures {
		path := filepath.Join(dir, fx.name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		var buf bytes.Buffer
		require.NoError(t, tags.WriteTrack(&buf, fx.raw, fx.payload))
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	}

	c, err := catalog.NewBuilder(afero.NewOsFs()).Build(context.Background(), dir)
	require.NoError(t, err)
	return NewFS(c, nil), dir
}

func museFS(t *testing.T) (*FS, string) {
	return newTestFS(t, fixture{
		name:    "song.mp3",
		raw:     tags.RawTags{Artist: "Muse", Genre: "Rock;Alt", Year: "2006"},
		payload: bytes.Repeat([]byte("0123456789"), 100),
	})
}

func TestReaddir_MuseScenario(t *testing.T) {
	f, _ := museFS(t)

	tests := []struct {
		path string
		want []string
	}{
		{path: "/", want: []string{".", "..", "Artists", "Genres", "Years"}},
		{path: "/Artists", want: []string{".", "..", "Muse"}},
		{path: "/Genres", want: []string{".", "..", "Alt", "Rock"}},
		{path: "/Years/", want: []string{".", "..", "2006"}},
		{path: "/Artists/Muse", want: []string{".", "..", "song.mp3"}},
		{path: "/Genres/Alt", want: []string{".", "..", "song.mp3"}},
		{path: "/Artists/Nobody", want: []string{".", ".."}},
		{path: "/NoSuchPath", want: []string{".", ".."}},
		{path: "/Artists/Muse/song.mp3", want: []string{".", ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(f.Readdir(tt.path)))
		})
	}
}

func TestReaddir_StopsEarly(t *testing.T) {
	f, _ := museFS(t)

	var got []string
	for name := range f.Readdir("/") {
		got = append(got, name)
		if name == "Artists" {
			break
		}
	}
	assert.Equal(t, []string{".", "..", "Artists"}, got)
}

func TestReaddir_CollidingBasenamesListedOnce(t *testing.T) {
	f, _ := newTestFS(t,
		fixture{name: "a/track.mp3", payload: []byte("first")},
		fixture{name: "b/track.mp3", payload: []byte("second")},
	)

	assert.Equal(t, []string{".", "..", "track.mp3"}, slices.Collect(f.Readdir("/Artists/Unknown")))

	data, err := f.Read("/Artists/Unknown/track.mp3", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestGetattr(t *testing.T) {
	f, dir := museFS(t)
	info, err := os.Stat(filepath.Join(dir, "song.mp3"))
	require.NoError(t, err)

	for _, p := range []string{"/", "/Artists", "/Genres/", "/Years/2006", "/Artists/Muse"} {
		t.Run(p, func(t *testing.T) {
			st, err := f.Getattr(p)
			require.NoError(t, err)
			assert.True(t, st.Mode.IsDir())
			assert.Equal(t, dirMode, st.Mode)
			assert.Equal(t, uint32(dirNlink), st.Nlink)
		})
	}

	for _, p := range []string{"/Artists/Muse/song.mp3", "/Genres/Rock/song.mp3", "/Genres/Alt/song.mp3", "/Years/2006/song.mp3"} {
		t.Run(p, func(t *testing.T) {
			st, err := f.Getattr(p)
			require.NoError(t, err)
			assert.True(t, st.Mode.IsRegular())
			assert.Equal(t, info.Size(), st.Size)
			assert.Equal(t, info.Mode(), st.Mode)
		})
	}

	_, err = f.Getattr("/NoSuchPath")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetattr_UntaggedDirectoriesAreDirectories(t *testing.T) {
	f, _ := newTestFS(t, fixture{name: "plain.mp3", payload: []byte("abc")})

	for _, p := range []string{"/Artists/Unknown", "/Genres/Unknown", "/Years/Unknown"} {
		st, err := f.Getattr(p)
		require.NoError(t, err)
		assert.True(t, st.Mode.IsDir(), p)

		file, err := f.Getattr(p + "/plain.mp3")
		require.NoError(t, err)
		assert.False(t, file.Mode.IsDir(), p)
	}
}

func TestOpen(t *testing.T) {
	f, _ := museFS(t)

	tests := []struct {
		name  string
		path  string
		flags int
		want  error
	}{
		{name: "read only", path: "/Genres/Alt/song.mp3", flags: os.O_RDONLY},
		{name: "read only with extra flags", path: "/Genres/Alt/song.mp3", flags: os.O_RDONLY | os.O_SYNC},
		{name: "write only", path: "/Genres/Alt/song.mp3", flags: os.O_WRONLY, want: ErrAccessDenied},
		{name: "read write", path: "/Genres/Alt/song.mp3", flags: os.O_RDWR, want: ErrAccessDenied},
		{name: "unknown alias", path: "/Genres/Alt/other.mp3", flags: os.O_RDONLY, want: ErrNotFound},
		{name: "directory", path: "/Genres/Alt", flags: os.O_RDONLY, want: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Open(tt.path, tt.flags)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRead_RoundTrip(t *testing.T) {
	f, dir := museFS(t)
	want, err := os.ReadFile(filepath.Join(dir, "song.mp3"))
	require.NoError(t, err)

	for vpath := range f.Catalog().Aliases() {
		got, err := f.Read(vpath, len(want), 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, vpath)
	}
}

func TestRead_Chunked(t *testing.T) {
	f, dir := museFS(t)
	want, err := os.ReadFile(filepath.Join(dir, "song.mp3"))
	require.NoError(t, err)

	var got []byte
	for offset := int64(0); ; offset += 97 {
		chunk, err := f.Read("/Years/2006/song.mp3", 97, offset)
		require.NoError(t, err)
		if len(chunk) == 0 {
			break
		}
		got = append(got, chunk...)
	}
	assert.Equal(t, want, got)
}

func TestRead_Boundaries(t *testing.T) {
	f, dir := museFS(t)
	content, err := os.ReadFile(filepath.Join(dir, "song.mp3"))
	require.NoError(t, err)
	size := int64(len(content))

	tests := []struct {
		name   string
		size   int
		offset int64
		want   []byte
	}{
		{name: "offset at end", size: 10, offset: size, want: []byte{}},
		{name: "offset past end", size: 10, offset: size + 100, want: []byte{}},
		{name: "clamped at end", size: 50, offset: size - 7, want: content[size-7:]},
		{name: "middle", size: 5, offset: 20, want: content[20:25]},
		{name: "zero size", size: 0, offset: 0, want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Read("/Artists/Muse/song.mp3", tt.size, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	f, dir := museFS(t)

	_, err := f.Read("/Artists/Muse/missing.mp3", 10, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.Remove(filepath.Join(dir, "song.mp3")))
	_, err = f.Read("/Artists/Muse/song.mp3", 10, 0)
	assert.ErrorIs(t, err, ErrIO)
}

func TestRead_MemorySource(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/music/a.mp3", []byte("hello world"), 0o644))
	c, err := catalog.NewBuilder(mem).Build(context.Background(), "/music")
	require.NoError(t, err)

	f := NewFS(c, mem)
	got, err := f.Read("/Genres/Unknown/a.mp3", 5, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), got)
}
