package core

import (
	"encoding/json"
	"os"
	"path/filepath"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"
)

var log = logger.GetOrCreate("core")

// OpenFile opens the file from the given path - does not close the file
func OpenFile(relativePath string) (*os.File, error) {
	path, err := filepath.Abs(relativePath)
	if err != nil {
		log.Error("cannot create absolute path for the provided file", "path", relativePath, "error", err.Error())
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// LoadTomlFile opens and decodes a toml file into the destination object
func LoadTomlFile(dest interface{}, relativePath string) error {
	f, err := OpenFile(relativePath)
	if err != nil {
		return err
	}

	defer func() {
		errClose := f.Close()
		if errClose != nil {
			log.Warn("cannot close file", "error", errClose.Error())
		}
	}()

	return toml.NewDecoder(f).Decode(dest)
}

// LoadJsonFile opens and decodes a json file into the destination object
func LoadJsonFile(dest interface{}, relativePath string) error {
	f, err := OpenFile(relativePath)
	if err != nil {
		return err
	}

	defer func() {
		errClose := f.Close()
		if errClose != nil {
			log.Warn("cannot close file", "error", errClose.Error())
		}
	}()

	return json.NewDecoder(f).Decode(dest)
}
