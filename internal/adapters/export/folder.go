package export

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// ReadFolder walks an already-extracted export directory and concatenates
// the record arrays of every history JSON file found. Duplicate files and
// non-history JSON are handled the same way as for archives.
func ReadFolder(dir string) ([]RawRecord, Diagnostics, error) {
	var (
		records []RawRecord
		diag    Diagnostics
		seen    = make(map[[sha256.Size]byte]struct{})
	)

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := strings.ToLower(d.Name())
		if !strings.HasSuffix(base, ".json") || strings.HasPrefix(base, "._") {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		digest := sha256.Sum256(data)
		if _, dup := seen[digest]; dup {
			diag.DuplicateFiles++
			return nil
		}
		seen[digest] = struct{}{}

		var batch []RawRecord
		if err := json.Unmarshal(data, &batch); err != nil {
			diag.SkippedFiles++
			return nil
		}
		diag.Files++
		diag.Records += len(batch)
		records = append(records, batch...)
		return nil
	})
	if err != nil {
		return nil, diag, err
	}
	return records, diag, nil
}
