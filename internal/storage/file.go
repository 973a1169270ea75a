package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileStore хранит каждую именованную коллекцию в отдельном JSON-файле
// внутри каталога данных. Ключи независимы: транзакций между ними нет.
type FileStore struct {
	dir string
	log zerolog.Logger
}

func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load читает сохранённое значение по ключу в dest.
// false означает "данных нет": ключ никогда не записывался либо его
// содержимое не разбирается как JSON. Ошибка разбора наружу не выходит.
func (f *FileStore) Load(key string, dest any) bool {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		f.log.Warn().Err(err).Str("key", key).Msg("stored payload is not valid JSON, treating as absent")
		return false
	}
	return true
}

// Save сериализует значение и перезаписывает ключ. Запись атомарна:
// временный файл плюс rename, чтобы обрыв процесса не оставил полузаписанный JSON.
func (f *FileStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}
