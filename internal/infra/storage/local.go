package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ローカルディスク実装
type LocalFileStore struct {
	root string
}

func NewLocalFileStore(root string) *LocalFileStore {
	return &LocalFileStore{root: root}
}

// uploads/<category>/<uuid>_<元ファイル名> に保存して相対パスを返す
func (s *LocalFileStore) Save(data []byte, originalName string, category string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty file")
	}

	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + sanitizeName(originalName)
	full := filepath.Join(dir, name)

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(category, name)), nil
}

// 無いパスはエラーにしない（削除は冪等）
func (s *LocalFileStore) Delete(path string) error {
	if path == "" {
		return nil
	}

	full := filepath.Join(s.root, filepath.FromSlash(path))

	err := os.Remove(full)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// パス区切りなどを落としてファイル名だけにする
func sanitizeName(name string) string {
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "file"
	}
	return name
}
