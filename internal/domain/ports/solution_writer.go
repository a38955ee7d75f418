package ports

import "leettrack/internal/domain/model"

// SolutionWriter renders solution stub files for problems.
type SolutionWriter interface {
	// Generate writes the stub file for the problem. created is false when
	// the file already exists; an existing file is never overwritten.
	Generate(problem *model.Problem) (filename string, created bool, err error)
}
