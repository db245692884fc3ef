package util

import (
	"fmt"
	"os"
	"syscall"
)

// FileInfo carries the identity an event log file is cached under:
// modification time, size, and inode. A file whose triple changed must be
// re-parsed.
type FileInfo struct {
	ModTime int64
	Size    int64
	Inode   uint64
}

// GetFileInfo retrieves detailed file information, including the inode
// number. Supported on Linux and macOS.
func GetFileInfo(filepath string) (*FileInfo, error) {
	stat, err := os.Stat(filepath)
	if err != nil {
		return nil, err
	}

	sysStat, ok := stat.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("failed to get file system information: %s", filepath)
	}

	return &FileInfo{
		ModTime: stat.ModTime().Unix(),
		Size:    stat.Size(),
		Inode:   sysStat.Ino,
	}, nil
}

// Equal reports whether two file identities match.
func (fi *FileInfo) Equal(other *FileInfo) bool {
	if fi == nil || other == nil {
		return false
	}
	return fi.ModTime == other.ModTime && fi.Size == other.Size && fi.Inode == other.Inode
}
