// Package dotenv resolves the layered .env files for an environment and
// parses them into a single variable table.
//
// Files are read with github.com/joho/godotenv. A file that does not exist
// is skipped; a file that exists but cannot be parsed fails the whole read
// with a *ParseError so callers never act on a partial table. Every
// assignment must use KEY=VALUE, and values are taken literally: "$"
// references are never expanded.
package dotenv

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

const FileName = ".env"

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// ParseError reports a malformed .env file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileSet returns the candidate files for basePath in priority order: the
// generic .env followed, when layered is set, by .env.<environment>.
// basePath is expected to carry no trailing separator. An environment
// rejected by ValidEnvironment never contributes a file.
func FileSet(basePath, environment string, layered bool) []string {
	files := []string{join(basePath, FileName)}
	if layered && environment != "" && ValidEnvironment(environment) == nil {
		files = append(files, join(basePath, FileName+"."+environment))
	}
	return files
}

// ValidEnvironment rejects names that would resolve outside the base
// directory when used as a file suffix.
func ValidEnvironment(environment string) error {
	if strings.ContainsAny(environment, `/\`+string(os.PathSeparator)) || strings.Contains(environment, "..") {
		return fmt.Errorf("invalid environment name %q", environment)
	}
	return nil
}

func join(dir, name string) string {
	return dir + string(os.PathSeparator) + name
}

// Read parses every existing file in order. Later files override earlier
// ones for the same key.
func Read(paths []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range paths {
		values, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			vars[k] = v
		}
	}
	return vars, nil
}

// ReadFile parses a single file. A missing file yields an empty table.
func ReadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses .env content. path is only used for error reporting.
func Parse(path string, data []byte) (map[string]string, error) {
	content := string(data)
	dollar := placeholder(content)

	values, err := godotenv.Parse(strings.NewReader(strings.ReplaceAll(content, "$", dollar)))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := checkAssignments(content); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	out := make(map[string]string, len(values))
	for key, value := range values {
		if !keyRegex.MatchString(key) {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("invalid line near %q: expected KEY=VALUE", key)}
		}
		out[key] = strings.ReplaceAll(value, dollar, "$")
	}
	return out, nil
}

// placeholder returns a token absent from content that stands in for "$"
// while godotenv parses, so its variable expansion never fires.
func placeholder(content string) string {
	token := "\x00dollar\x00"
	for n := 0; strings.Contains(content, token); n++ {
		token = fmt.Sprintf("\x00dollar%d\x00", n)
	}
	return token
}

// checkAssignments requires every statement to be KEY=VALUE. godotenv also
// accepts KEY:VALUE, which is rejected here.
func checkAssignments(content string) error {
	var open byte
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if open != 0 {
			if closesQuote(line, open) {
				open = 0
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "export"); ok && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			line = strings.TrimSpace(rest)
		}

		eq := strings.IndexByte(line, '=')
		if eq <= 0 || strings.ContainsRune(line[:eq], ':') {
			return fmt.Errorf("line %d: missing '=' in %q", i+1, line)
		}

		value := strings.TrimLeft(line[eq+1:], " \t")
		if value != "" && (value[0] == '"' || value[0] == '\'') && !closesQuote(value[1:], value[0]) {
			open = value[0]
		}
	}
	return nil
}

func closesQuote(s string, quote byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && quote == '"' {
			i++
			continue
		}
		if s[i] == quote {
			return true
		}
	}
	return false
}

// Exists reports whether path names a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
