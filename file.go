package termedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hnimtadd/termedit/editor/viewport"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readLines splits r into lines without their terminators. A leading byte
// order mark is dropped; UTF-16 input with a BOM is converted to UTF-8.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Open replaces the buffer with the content of r. filename is used for the
// status bar, lexicon selection and Save. The new buffer is not dirty.
func (s *Session) Open(r io.Reader, filename string) error {
	lines, err := readLines(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(filename, lines)
	s.logger.Info("opened file", "filename", filename, "rows", len(lines))
	return nil
}

// OpenFile opens the file at path. A path that does not exist yet opens an
// empty buffer that Save will create.
func (s *Session) OpenFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.load(path, nil)
		s.setStatus("\"%s\" [New File]", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return s.Open(f, path)
}

func (s *Session) load(filename string, lines []string) {
	s.filename = filename
	s.store = s.newStore(s.selectLexicon())
	for _, line := range lines {
		// Appending is always in range.
		_, _ = s.store.InsertRow(s.store.Len(), line)
	}
	s.store.ResetDirty()

	s.cursor = viewport.Cursor{}
	s.view.RowOffset, s.view.ColOffset = 0, 0
	s.search = nil
}

// Save writes the buffer to its file.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filename == "" {
		return ErrNoFilename
	}
	return s.writeBuffer()
}

// save writes the buffer, asking for a name first when it has none. then,
// when not nil, runs once the buffer is written and its error is returned.
// Write failures are reported on the status line only.
func (s *Session) save(then func() error) error {
	if s.filename == "" {
		s.startPrompt("Save as: %s (ESC to cancel)", nil, func(name string, ok bool) error {
			if !ok {
				s.setStatus("Save aborted")
				return nil
			}
			s.filename = name
			s.store.SetLexicon(s.selectLexicon())
			return s.save(then)
		})
		return nil
	}

	if err := s.writeBuffer(); err != nil || then == nil {
		return nil
	}
	return then()
}

func (s *Session) writeBuffer() error {
	n, err := writeFile(s.filename, s.store.ToFlatText())
	if err != nil {
		s.logger.Error("failed to save", "filename", s.filename, "error", err)
		s.setStatus("Can't save! I/O error: %v", err)
		return err
	}
	s.store.ResetDirty()
	s.logger.Info("saved file", "filename", s.filename, "bytes", n)
	s.setStatus("%d bytes written to '%s'", n, s.filename)
	return nil
}

// writeFile replaces the content of path with data, creating it with mode
// 0644 when missing. Failing to open, truncate or write are all errors.
func writeFile(path string, data []byte) (n int, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.Truncate(int64(len(data))); err != nil {
		return 0, err
	}
	return f.Write(data)
}
