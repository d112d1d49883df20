package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a secret value from the given file. The name is only used in
// error messages to give more context. The returned value is trimmed.
func Load(name, file string) (string, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = "secret"
	}

	file = strings.TrimSpace(file)
	if file == "" {
		return "", fmt.Errorf("%s file is not configured", name)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	return secret, nil
}
