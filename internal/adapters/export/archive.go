package export

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"path"
	"strings"

	json "github.com/goccy/go-json"
)

// maxNestingDepth bounds recursion into ZIPs packaged inside the uploaded
// ZIP (some export tools wrap the official archive a second time).
const maxNestingDepth = 3

// Diagnostics reports what the ingestion step saw, independent of the parse
// step's dropped-record count.
type Diagnostics struct {
	Files          int // JSON member files decoded
	DuplicateFiles int // members skipped as byte-identical to an earlier one
	SkippedFiles   int // members that were not decodable record arrays
	Records        int // raw records collected
}

// ExtractArchive reads every history JSON member of a ZIP archive fully in
// memory and concatenates their record arrays. Resource-fork members and
// __MACOSX folders are ignored, nested ZIPs are descended into, and member
// files with identical content are read once.
func ExtractArchive(r io.ReaderAt, size int64) ([]RawRecord, Diagnostics, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("opening archive: %w", err)
	}

	var (
		records []RawRecord
		diag    Diagnostics
		seen    = make(map[[sha256.Size]byte]struct{})
	)
	if err := extract(zr, 0, seen, &records, &diag); err != nil {
		return nil, diag, err
	}
	return records, diag, nil
}

func extract(zr *zip.Reader, depth int, seen map[[sha256.Size]byte]struct{}, records *[]RawRecord, diag *Diagnostics) error {
	for _, member := range zr.File {
		if member.FileInfo().IsDir() || skipMember(member.Name) {
			continue
		}

		name := strings.ToLower(path.Base(member.Name))
		isZip := strings.HasSuffix(name, ".zip")
		if !isZip && !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := readMember(member)
		if err != nil {
			return fmt.Errorf("reading archive member %s: %w", member.Name, err)
		}

		digest := sha256.Sum256(data)
		if _, dup := seen[digest]; dup {
			diag.DuplicateFiles++
			continue
		}
		seen[digest] = struct{}{}

		if isZip {
			if depth >= maxNestingDepth {
				diag.SkippedFiles++
				continue
			}
			nested, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				diag.SkippedFiles++
				continue
			}
			if err := extract(nested, depth+1, seen, records, diag); err != nil {
				return err
			}
			continue
		}

		var batch []RawRecord
		if err := json.Unmarshal(data, &batch); err != nil {
			// Exports ship non-history JSON alongside the history files
			// (account data, playlists); anything that is not a record array
			// is skipped, not fatal.
			diag.SkippedFiles++
			continue
		}
		diag.Files++
		diag.Records += len(batch)
		*records = append(*records, batch...)
	}
	return nil
}

// skipMember filters macOS archive artifacts.
func skipMember(name string) bool {
	if strings.HasPrefix(name, "__MACOSX") {
		return true
	}
	return strings.HasPrefix(path.Base(name), "._")
}

func readMember(member *zip.File) ([]byte, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
