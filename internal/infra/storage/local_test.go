package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalFileStore_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s := NewLocalFileStore(root)

	path, err := s.Save([]byte("jpeg-bytes"), "front bumper.jpg", "parts")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "parts/"))
	//空白は_に置換される
	assert.True(t, strings.HasSuffix(path, "_front_bumper.jpg"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	assert.NoError(t, s.Delete(path))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStore_Save_EmptyData(t *testing.T) {
	s := NewLocalFileStore(t.TempDir())

	_, err := s.Save(nil, "a.jpg", "parts")
	assert.Error(t, err)
}

// パス区切りを含む名前はファイル名だけ残す
func TestLocalFileStore_Save_SanitizesName(t *testing.T) {
	root := t.TempDir()
	s := NewLocalFileStore(root)

	path, err := s.Save([]byte("x"), "../../etc/passwd", "gallery")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "gallery/"))
	assert.False(t, strings.Contains(path, ".."))
}

// 削除は冪等
func TestLocalFileStore_Delete_MissingPathIsNoop(t *testing.T) {
	s := NewLocalFileStore(t.TempDir())

	assert.NoError(t, s.Delete("parts/does-not-exist.jpg"))
	assert.NoError(t, s.Delete(""))
}
