package bootstrap

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

// resetDir removes dir and everything in it, then recreates it empty.
// The working directory and filesystem roots are refused.
func resetDir(dir string) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == filepath.Dir(clean) {
		return derrors.ValidationFailed("out", "refusing to clear "+clean)
	}
	if err := os.RemoveAll(clean); err != nil {
		return derrors.FileSystemError("remove", clean, err)
	}
	if err := os.MkdirAll(clean, 0o750); err != nil {
		return derrors.FileSystemError("mkdir", clean, err)
	}
	return nil
}

func writePage(root string, page apimodel.RenderedPage) error {
	full := filepath.Join(root, filepath.FromSlash(page.Path))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return derrors.FileSystemError("mkdir", filepath.Dir(full), err)
	}
	// #nosec G306 -- generated pages are public site content
	if err := os.WriteFile(full, page.Content, 0o644); err != nil {
		return derrors.FileSystemError("write", full, err)
	}
	return nil
}
