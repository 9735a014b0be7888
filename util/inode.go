package util

import "github.com/cespare/xxhash/v2"

// RootInode is the inode reported for the filesystem root.
const RootInode uint64 = 1

// DirInode derives a stable inode number for a synthetic directory from its
// virtual path, so that repeated lookups of one directory agree without any
// shared registry. 0 and 1 are reserved.
func DirInode(vpath string) uint64 {
	if vpath == "/" {
		return RootInode
	}
	ino := xxhash.Sum64String(vpath)
	if ino <= RootInode {
		ino += 2
	}
	return ino
}
