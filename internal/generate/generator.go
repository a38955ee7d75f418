// Package generate renders Go solution stub files for indexed problems.
package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"leettrack/internal/domain/model"
	"leettrack/internal/domain/ports"
)

// funcSignature matches the first function declaration of a LeetCode Go
// snippet, method receivers included, up to the opening brace.
var funcSignature = regexp.MustCompile(`(?m)^func\s+(?:\([^)]*\)\s*)?(\w+)\s*\([^)]*\)[^{\n]*`)

// Generator writes solution stubs into a fixed directory.
type Generator struct {
	dir string
}

var _ ports.SolutionWriter = (*Generator)(nil)

// New creates a Generator writing into dir.
func New(dir string) *Generator {
	return &Generator{dir: dir}
}

// Filename derives the deterministic stub file name for a problem.
func Filename(id int, slug string) string {
	return fmt.Sprintf("p%04d_%s.go", id, strings.ReplaceAll(slug, "-", "_"))
}

// Generate writes the stub file for the problem. created is false when the
// file already exists; an existing file is never overwritten.
func (g *Generator) Generate(problem *model.Problem) (string, bool, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create solutions dir: %w", err)
	}

	filename := Filename(problem.ID, problem.Slug)
	path := filepath.Join(g.dir, filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return filename, false, nil
		}
		return "", false, fmt.Errorf("create %s: %w", filename, err)
	}

	if _, err := f.WriteString(render(problem)); err != nil {
		f.Close()
		os.Remove(path)
		return "", false, fmt.Errorf("write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", false, fmt.Errorf("close %s: %w", filename, err)
	}

	return filename, true, nil
}

func render(problem *model.Problem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %d. %s\n", problem.ID, problem.Title)
	fmt.Fprintf(&b, "// %s\n//\n", problem.Link)
	fmt.Fprintf(&b, "// Difficulty: %s\n", problem.Difficulty)
	if len(problem.Tags) > 0 {
		fmt.Fprintf(&b, "// Tags: %s\n", strings.Join(problem.Tags, ", "))
	}

	for _, section := range []string{problem.Description, problem.Examples, problem.Constraints} {
		if section == "" {
			continue
		}
		b.WriteString("//\n")
		b.WriteString(commentBlock(section))
	}

	b.WriteString("\npackage solutions\n\n")
	b.WriteString(stubFunc(problem.CodeSnippet))

	return b.String()
}

// commentBlock prefixes every line of text with a line comment marker.
func commentBlock(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// stubFunc builds a placeholder function from the problem's canonical Go
// snippet, falling back to a bare solve function when no snippet parses.
func stubFunc(snippet string) string {
	match := funcSignature.FindString(snippet)
	if match == "" {
		return "func solve() {\n\tpanic(\"not implemented\")\n}\n"
	}
	return strings.TrimSpace(match) + " {\n\tpanic(\"not implemented\")\n}\n"
}
