// Package tagfs implements the read-only FUSE filesystem that presents a
// music catalog as
//
//	/Artists/<artist>/<file>
//	/Genres/<genre>/<file>
//	/Years/<year>/<file>
//
// FS answers the four protocol operations (Getattr, Readdir, Open and Read) as
// functions of a virtual path and the immutable catalog.Catalog it was created
// with. The bazil.org/fuse node types Dir and File wrap those operations for the
// kernel bridge; they hold only their virtual path, so any number of requests
// may be served concurrently without locking.
//
// Files are handle-less: every Read opens the real file, reads the requested
// range and closes it again.
package tagfs
