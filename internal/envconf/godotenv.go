package envconf

import (
	"fmt"

	"github.com/joho/godotenv"
)

// DotenvReader is an implementation wrapping the Godotenv framework.
type DotenvReader struct{}

// Read reads dotenv-style configuration files into a map (map[key]value).
func (*DotenvReader) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(envconf-godotenv) %w", err)
	}

	return data, nil
}
