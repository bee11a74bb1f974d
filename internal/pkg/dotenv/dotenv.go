package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	baseFile  = ".env"
	localFile = ".env.local"
)

// Load подгружает .env и затем .env.local из рабочего каталога.
// .env не перетирает уже заданное окружение, .env.local перетирает.
// Возвращает список реально прочитанных файлов.
func Load() ([]string, error) {
	var loaded []string

	if exists(baseFile) {
		if err := godotenv.Load(baseFile); err != nil {
			return loaded, fmt.Errorf("load %s: %w", baseFile, err)
		}
		loaded = append(loaded, baseFile)
	}

	if exists(localFile) {
		if err := godotenv.Overload(localFile); err != nil {
			return loaded, fmt.Errorf("load %s: %w", localFile, err)
		}
		loaded = append(loaded, localFile)
	}

	return loaded, nil
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return !errors.Is(err, fs.ErrNotExist)
}
