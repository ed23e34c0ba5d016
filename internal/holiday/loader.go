package holiday

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Encoding selects how holiday file bytes are decoded.
type Encoding int

const (
	EncodingShiftJIS Encoding = iota
	EncodingUTF8
)

// ParseEncoding parses an encoding flag value ("sjis" or "utf8").
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "sjis":
		return EncodingShiftJIS, nil
	case "utf8":
		return EncodingUTF8, nil
	}
	return 0, fmt.Errorf("encoding must be 'sjis' or 'utf8', got '%s'", s)
}

func (e Encoding) String() string {
	if e == EncodingUTF8 {
		return "utf8"
	}
	return "sjis"
}

// defaultFileName is looked up under $HOME when no file is given explicitly.
const defaultFileName = ".calp_shuku"

// The Cabinet Office CSV writes dates without zero padding (2024/1/1).
const dateLayout = "2006/1/2"

// Load reads a holiday file into an Index. With an empty path the default
// file under the home directory is tried; if it is missing or unreadable the
// returned Index is simply empty. An explicit path that cannot be opened is
// an error.
func Load(path string, enc Encoding, logger *zap.Logger) (*Index, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return NewIndex(), nil
		}
		path = filepath.Join(home, defaultFileName)
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit {
			logger.Debug("default holiday file not readable, continuing without holidays",
				zap.String("file", path),
				zap.Error(err))
			return NewIndex(), nil
		}
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer f.Close()

	idx, err := Parse(f, enc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file %s: %w", path, err)
	}

	logger.Debug("holiday file loaded",
		zap.String("file", path),
		zap.Int("holidays", idx.Len()))

	return idx, nil
}

// Parse decodes r with the given encoding and indexes one date per line.
// The text before the first comma must be a YYYY/MM/DD date; lines without a
// comma or with an unparsable date are skipped, never fatal.
func Parse(r io.Reader, enc Encoding, logger *zap.Logger) (*Index, error) {
	if enc == EncodingShiftJIS {
		r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	}

	idx := NewIndex()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		dateStr, _, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
		if err != nil {
			logger.Debug("skipping holiday line", zap.String("line", line), zap.Error(err))
			continue
		}

		idx.Add(date)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday data: %w", err)
	}

	return idx, nil
}
