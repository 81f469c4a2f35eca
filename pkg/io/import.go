package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/depscan/pkg/manager"
)

// ReadPackageFile decodes one package file from r. A JSON null yields a
// nil package file.
func ReadPackageFile(r io.Reader) (*manager.PackageFile, error) {
	var pf *manager.PackageFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("decode package file: %w", err)
	}
	return pf, nil
}
