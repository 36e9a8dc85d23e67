// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text files.
// Each file holds one value: the filename is the key name and the file
// contents (trimmed) are the value.
//
// Supported key files: ncbi-api-key, contact-email. The environment
// variables NCBI_API_KEY and NCBI_CONTACT_EMAIL override file values.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	apiKeyFile = "ncbi-api-key"
	emailFile  = "contact-email"

	apiKeyEnv = "NCBI_API_KEY"
	emailEnv  = "NCBI_CONTACT_EMAIL"
)

// Credentials holds the optional NCBI E-utilities access parameters.
// Either field may be empty; requests then run against the shared
// anonymous rate limit.
type Credentials struct {
	APIKey string
	Email  string
}

// Load reads credentials from dir, then applies environment overrides.
// A missing directory or missing files are not errors; only a file that
// exists but cannot be read is.
func Load(dir string) (Credentials, error) {
	var creds Credentials

	apiKey, err := readSecretFile(filepath.Join(dir, apiKeyFile))
	if err != nil {
		return Credentials{}, err
	}
	creds.APIKey = apiKey

	email, err := readSecretFile(filepath.Join(dir, emailFile))
	if err != nil {
		return Credentials{}, err
	}
	creds.Email = email

	if v := os.Getenv(apiKeyEnv); v != "" {
		creds.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv(emailEnv); v != "" {
		creds.Email = strings.TrimSpace(v)
	}

	return creds, nil
}

func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading secret %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
