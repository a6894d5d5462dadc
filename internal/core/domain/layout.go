package domain

import "path/filepath"

const (
	// WebpinDirName is the metadata directory created in the project root.
	WebpinDirName = ".webpin"

	// CacheDirName is the cache subdirectory name.
	CacheDirName = "cache"

	// ModulesDirName holds the persistent module cache entries.
	ModulesDirName = "modules"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultModuleCachePath returns the default path for the persistent module
// cache. It joins .webpin, cache, and modules.
func DefaultModuleCachePath() string {
	return filepath.Join(WebpinDirName, CacheDirName, ModulesDirName)
}
