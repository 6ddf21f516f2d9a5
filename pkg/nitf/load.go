package nitf

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Parallel enables concurrent file loading.
	// When true, files are loaded using multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of parallel loader goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes loading to continue even when individual files fail.
	// Failed files are skipped and errors are collected.
	// When false, the first error stops loading and is returned immediately.
	SkipErrors bool

	// Progress is an optional callback for tracking loading progress.
	// Called after each file is loaded (successfully or with error).
	Progress func(loaded, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each loading error is written here with the file path and error details.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// LoadFilesParallel decodes multiple NITF files with a worker pool.
//
// Results keep the order of the input paths regardless of which worker
// finished first. When SkipErrors is set, failed files are dropped from
// the result and their errors returned alongside it.
//
// Example:
//
//	parser := nitf.NewParser()
//	files, errs := nitf.LoadFilesParallel(paths, parser, nitf.LoadOptions{
//	    Parallel:   true,
//	    Workers:    8,
//	    SkipErrors: true,
//	    Progress: func(loaded, total int) {
//	        fmt.Printf("\rLoading: %d/%d", loaded, total)
//	    },
//	    ErrorLog: os.Stderr,
//	})
func LoadFilesParallel(paths []string, parser Parser, opts LoadOptions) ([]IndexedFile, []error) {
	if len(paths) == 0 {
		return []IndexedFile{}, nil
	}

	if !opts.Parallel {
		return loadFilesSerial(paths, parser, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index int
		file  *File
		err   error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				file, err := parser.Parse(paths[index])
				results <- loadResult{
					index: index,
					file:  file,
					err:   err,
				}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	fileMap := make(map[int]*File)
	var errors []error
	loaded := 0

	for result := range results {
		loaded++

		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		if result.err != nil {
			err := fmt.Errorf("%s: %w", paths[result.index], result.err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading file: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			} else {
				return nil, []error{err}
			}
		}

		fileMap[result.index] = result.file
	}

	// Build ordered result list
	files := make([]IndexedFile, 0, len(fileMap))
	for i := 0; i < len(paths); i++ {
		if file, ok := fileMap[i]; ok {
			files = append(files, IndexedFile{Path: paths[i], File: file})
		}
	}

	return files, errors
}

// loadFilesSerial loads files one at a time (fallback when Parallel=false).
func loadFilesSerial(paths []string, parser Parser, opts LoadOptions) ([]IndexedFile, []error) {
	files := make([]IndexedFile, 0, len(paths))
	var errors []error

	for i, path := range paths {
		if opts.Progress != nil {
			opts.Progress(i, len(paths))
		}

		file, err := parser.Parse(path)
		if err != nil {
			err := fmt.Errorf("%s: %w", path, err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading file: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			} else {
				return nil, []error{err}
			}
		}

		files = append(files, IndexedFile{Path: path, File: file})
	}

	if opts.Progress != nil {
		opts.Progress(len(paths), len(paths))
	}

	return files, errors
}

// BuildIndexFromDir walks a directory tree, decodes every NITF file
// found (.ntf, .nitf and .nsf extensions, case-insensitive) and builds
// a spatial index over their image segments.
func BuildIndexFromDir(root string, parser Parser, opts LoadOptions) (*ImageIndex, []error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ntf", ".nitf", ".nsf":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, []error{fmt.Errorf("walking %s: %w", root, err)}
	}

	files, errs := LoadFilesParallel(paths, parser, opts)
	if files == nil {
		return nil, errs
	}
	return BuildIndex(files), errs
}
