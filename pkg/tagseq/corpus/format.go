package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/tagseq/pkg/tagseq/internalerr"
)

// Token is one raw corpus record before boundary handling. Boundary
// markers (Char == "EOS" or Tag == "O") pass through as ordinary tokens;
// the corpus state machine interprets them.
type Token struct {
	Char string
	Type string
	Tag  string
	Line int // 0-based position within the source file
}

// IsBoundary reports whether this token terminates a sequence.
func (t Token) IsBoundary() bool {
	return t.Char == "EOS" || t.Tag == "O"
}

// Format parses one corpus file into a stream of raw tokens. Each
// concrete corpus representation (plain text, sqlite, ...) implements
// its own parsing rule; sequence assembly is shared by the corpus.
type Format interface {
	Name() string
	Tokens(path string, emit func(Token) error) error
}

// ThaiWordFile reads the plain-text Thai word-segmentation format: one
// token per line, three whitespace-separated columns
// "<character> <char_type> <tag>".
type ThaiWordFile struct{}

func (ThaiWordFile) Name() string { return "thai-text" }

// Tokens scans the file line by line. A line without exactly three
// columns is a fatal parse error; there is no recovery or skipping.
func (ThaiWordFile) Tokens(path string, emit func(Token) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return fmt.Errorf("line %d: %d columns: %w", line, len(fields), internalerr.ErrMalformedLine)
		}
		if err := emit(Token{Char: fields[0], Type: fields[1], Tag: fields[2], Line: line}); err != nil {
			return err
		}
		line++
	}
	return scanner.Err()
}
