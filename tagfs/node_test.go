package tagfs

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/tagfs/tags"
	"github.com/dendrascience/tagfs/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupPath(t *testing.T, f *FS, names ...string) fs.Node {
	t.Helper()
	root, err := f.Root()
	require.NoError(t, err)

	node := root
	for _, name := range names {
		dir, ok := node.(*Dir)
		require.True(t, ok, "expected directory before %q", name)
		node, err = dir.Lookup(context.Background(), name)
		require.NoError(t, err, name)
	}
	return node
}

func TestDir_Attr(t *testing.T) {
	f, _ := museFS(t)
	ctx := context.Background()

	var a fuse.Attr
	require.NoError(t, lookupPath(t, f).Attr(ctx, &a))
	assert.Equal(t, os.ModeDir|os.FileMode(0o755), a.Mode)
	assert.Equal(t, util.RootInode, a.Inode)
	assert.Equal(t, uint32(2), a.Nlink)

	require.NoError(t, lookupPath(t, f, "Genres", "Alt").Attr(ctx, &a))
	assert.True(t, a.Mode.IsDir())
	assert.Equal(t, util.DirInode("/Genres/Alt"), a.Inode)
}

func TestDir_Lookup(t *testing.T) {
	f, _ := museFS(t)
	ctx := context.Background()

	node := lookupPath(t, f, "Artists", "Muse", "song.mp3")
	file, ok := node.(*File)
	require.True(t, ok)
	assert.Equal(t, "/Artists/Muse/song.mp3", file.path)

	root, err := f.Root()
	require.NoError(t, err)
	_, err = root.(*Dir).Lookup(ctx, "NoSuchPath")
	assert.Equal(t, syscall.ENOENT, err)
}

func TestDir_ReadDirAll(t *testing.T) {
	f, _ := museFS(t)
	ctx := context.Background()

	dirents, err := lookupPath(t, f, "Genres").(*Dir).ReadDirAll(ctx)
	require.NoError(t, err)
	require.Len(t, dirents, 4)
	assert.Equal(t, fuse.Dirent{Inode: util.DirInode("/Genres"), Name: ".", Type: fuse.DT_Dir}, dirents[0])
	assert.Equal(t, fuse.Dirent{Inode: util.RootInode, Name: "..", Type: fuse.DT_Dir}, dirents[1])
	assert.Equal(t, "Alt", dirents[2].Name)
	assert.Equal(t, fuse.DT_Dir, dirents[2].Type)

	dirents, err = lookupPath(t, f, "Years", "2006").(*Dir).ReadDirAll(ctx)
	require.NoError(t, err)
	require.Len(t, dirents, 3)
	assert.Equal(t, "song.mp3", dirents[2].Name)
	assert.Equal(t, fuse.DT_File, dirents[2].Type)
}

func TestFile_AttrSharedAcrossAliases(t *testing.T) {
	f, dir := museFS(t)
	ctx := context.Background()
	info, err := os.Stat(filepath.Join(dir, "song.mp3"))
	require.NoError(t, err)

	var byArtist, byGenre fuse.Attr
	require.NoError(t, lookupPath(t, f, "Artists", "Muse", "song.mp3").Attr(ctx, &byArtist))
	require.NoError(t, lookupPath(t, f, "Genres", "Rock", "song.mp3").Attr(ctx, &byGenre))

	assert.Equal(t, byArtist, byGenre)
	assert.Equal(t, uint64(info.Size()), byArtist.Size)
	assert.True(t, byArtist.Mode.IsRegular())
}

func TestFile_OpenAndRead(t *testing.T) {
	f, dir := museFS(t)
	ctx := context.Background()
	content, err := os.ReadFile(filepath.Join(dir, "song.mp3"))
	require.NoError(t, err)

	file := lookupPath(t, f, "Genres", "Alt", "song.mp3").(*File)

	_, err = file.Open(ctx, &fuse.OpenRequest{Flags: fuse.OpenWriteOnly}, &fuse.OpenResponse{})
	assert.Equal(t, syscall.EACCES, err)
	_, err = file.Open(ctx, &fuse.OpenRequest{Flags: fuse.OpenReadWrite}, &fuse.OpenResponse{})
	assert.Equal(t, syscall.EACCES, err)

	h, err := file.Open(ctx, &fuse.OpenRequest{Flags: fuse.OpenReadOnly}, &fuse.OpenResponse{})
	require.NoError(t, err)
	reader, ok := h.(fs.HandleReader)
	require.True(t, ok)

	resp := &fuse.ReadResponse{}
	require.NoError(t, reader.Read(ctx, &fuse.ReadRequest{Offset: 10, Size: 16}, resp))
	assert.Equal(t, content[10:26], resp.Data)

	resp = &fuse.ReadResponse{}
	require.NoError(t, reader.Read(ctx, &fuse.ReadRequest{Offset: int64(len(content)), Size: 16}, resp))
	assert.Empty(t, resp.Data)
}

func TestFile_ReadIOError(t *testing.T) {
	f, dir := newTestFS(t, fixture{name: "gone.mp3", raw: tags.RawTags{Artist: "A"}, payload: []byte("x")})
	file := lookupPath(t, f, "Artists", "A", "gone.mp3").(*File)
	require.NoError(t, os.Remove(filepath.Join(dir, "gone.mp3")))

	err := file.Read(context.Background(), &fuse.ReadRequest{Size: 1}, &fuse.ReadResponse{})
	assert.Equal(t, syscall.EIO, err)
}

func TestToErrno(t *testing.T) {
	assert.NoError(t, toErrno(nil))
	assert.Equal(t, syscall.ENOENT, toErrno(ErrNotFound))
	assert.Equal(t, syscall.EACCES, toErrno(ErrAccessDenied))
	assert.Equal(t, syscall.EIO, toErrno(ErrIO))
	assert.Equal(t, syscall.EIO, toErrno(os.ErrClosed))
}
