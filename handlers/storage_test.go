package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTempUploadPathConfinesClientFilenames(t *testing.T) {
	tmp := filepath.Clean(os.TempDir())

	cases := []string{
		"photo.jpg",
		"../../etc/cron.d/evil",
		"/etc/passwd",
		"nested/dir/file.png",
	}
	for _, name := range cases {
		p := tempUploadPath(name)
		assert.Equal(t, tmp, filepath.Dir(p), "filename %q", name)
	}
}
