package walletfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"coinwagon/models"
)

// Load reads wallet entries from a UTF-8 text file, one `asset,address`
// pair per line. Blank lines and lines starting with # are ignored. File
// order defines entry order.
func Load(path string) ([]models.WalletEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.WalletFileError{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, &models.WalletFileError{Path: path, Err: err}
	}
	return entries, nil
}

// Parse reads entries from r. A non-comment line that does not split into
// exactly two fields makes the whole file invalid.
func Parse(r io.Reader) ([]models.WalletEntry, error) {
	var entries []models.WalletEntry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected asset,address but got %q", lineNo, line)
		}

		asset := strings.TrimSpace(parts[0])
		addr := strings.TrimSpace(parts[1])
		if asset == "" || addr == "" {
			return nil, errors.Errorf("line %d: empty asset or address", lineNo)
		}

		entries = append(entries, models.WalletEntry{Asset: asset, Address: addr})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read wallet file")
	}

	return entries, nil
}
