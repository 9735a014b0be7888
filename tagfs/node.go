package tagfs

import (
	"context"
	"path"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/tagfs/catalog"
	"github.com/dendrascience/tagfs/util"
)

var (
	_ fs.FS                 = (*FS)(nil)
	_ fs.Node               = (*Dir)(nil)
	_ fs.NodeStringLookuper = (*Dir)(nil)
	_ fs.HandleReadDirAller = (*Dir)(nil)
	_ fs.Node               = (*File)(nil)
	_ fs.NodeOpener         = (*File)(nil)
	_ fs.HandleReader       = (*File)(nil)
)

// Root returns the root directory node
func (f *FS) Root() (fs.Node, error) {
	return &Dir{fs: f, path: "/"}, nil
}

// Dir is a synthetic directory: the root, a category or a tag value.
type Dir struct {
	fs   *FS
	path string
}

// Attr returns directory attributes
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	st, err := d.fs.Getattr(d.path)
	if err != nil {
		return toErrno(err)
	}
	fillAttr(a, st)
	return nil
}

// Lookup resolves a name inside the directory to a child node
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	child := path.Join(d.path, name)
	node := d.fs.catalog.Resolve(child)
	switch {
	case node.Kind == catalog.TrackFile:
		return &File{fs: d.fs, path: node.Path}, nil
	case node.Kind.IsDir():
		return &Dir{fs: d.fs, path: node.Path}, nil
	}
	return nil, toErrno(ErrNotFound)
}

// ReadDirAll lists directory contents
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	var dirents []fuse.Dirent
	for name := range d.fs.Readdir(d.path) {
		dirents = append(dirents, d.dirent(name))
	}
	return dirents, nil
}

func (d *Dir) dirent(name string) fuse.Dirent {
	switch name {
	case ".":
		return fuse.Dirent{Inode: util.DirInode(d.path), Name: name, Type: fuse.DT_Dir}
	case "..":
		return fuse.Dirent{Inode: util.DirInode(path.Dir(d.path)), Name: name, Type: fuse.DT_Dir}
	}

	node := d.fs.catalog.Resolve(path.Join(d.path, name))
	if node.Kind == catalog.TrackFile {
		return fuse.Dirent{Inode: node.Track.Stat.Inode, Name: name, Type: fuse.DT_File}
	}
	return fuse.Dirent{Inode: util.DirInode(node.Path), Name: name, Type: fuse.DT_Dir}
}

// File is one alias of a track. It is its own handle.
type File struct {
	fs   *FS
	path string
}

// Attr returns the track's captured attributes
func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	st, err := f.fs.Getattr(f.path)
	if err != nil {
		return toErrno(err)
	}
	fillAttr(a, st)
	return nil
}

// Open validates read-only access
func (f *File) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fs.Handle, error) {
	if err := f.fs.Open(f.path, int(req.Flags)); err != nil {
		return nil, toErrno(err)
	}
	return f, nil
}

// Read serves one byte range from the real file
func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	data, err := f.fs.Read(f.path, req.Size, req.Offset)
	if err != nil {
		return toErrno(err)
	}
	resp.Data = data
	return nil
}

func fillAttr(a *fuse.Attr, st catalog.FileStat) {
	a.Inode = st.Inode
	a.Mode = st.Mode
	a.Size = uint64(st.Size)
	a.Blocks = st.Blocks
	a.BlockSize = st.BlockSize
	a.Nlink = st.Nlink
	a.Uid = st.Uid
	a.Gid = st.Gid
	a.Atime = st.Atime
	a.Mtime = st.Mtime
	a.Ctime = st.Ctime
}
