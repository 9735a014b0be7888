package catalog

import (
	"os"
	"time"
)

// FileStat is the POSIX status of a file captured at scan time.
type FileStat struct {
	Inode     uint64
	Mode      os.FileMode
	Size      int64
	Blocks    uint64
	BlockSize uint32
	Nlink     uint32
	Uid       uint32
	Gid       uint32
	Atime     time.Time
	Mtime     time.Time
	Ctime     time.Time
}

// TrackRecord is one physical audio file. Its stat is never refreshed.
type TrackRecord struct {
	RealPath string
	Stat     FileStat
}

// statFromInfo converts a FileInfo into a FileStat, taking inode, link count,
// ownership and timestamps from the platform stat structure when present.
func statFromInfo(info os.FileInfo) FileStat {
	st := FileStat{
		Mode:  info.Mode(),
		Size:  info.Size(),
		Nlink: 1,
		Atime: info.ModTime(),
		Mtime: info.ModTime(),
		Ctime: info.ModTime(),
	}
	fillSysStat(&st, info.Sys())
	return st
}
