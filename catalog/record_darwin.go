//go:build darwin

package catalog

import (
	"syscall"
	"time"
)

func fillSysStat(st *FileStat, sys any) {
	s, ok := sys.(*syscall.Stat_t)
	if !ok {
		return
	}
	st.Inode = s.Ino
	st.Nlink = uint32(s.Nlink)
	st.Uid = s.Uid
	st.Gid = s.Gid
	st.Blocks = uint64(s.Blocks)
	st.BlockSize = uint32(s.Blksize)
	st.Atime = time.Unix(s.Atimespec.Unix())
	st.Mtime = time.Unix(s.Mtimespec.Unix())
	st.Ctime = time.Unix(s.Ctimespec.Unix())
}
