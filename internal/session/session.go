// Package session ties together the state one compilation shares
// across files: the source map, the interner and the diagnostic sink.
// Its parse entry points fan the input files out over a bounded worker
// group; everything below them is the single-file machinery under
// internal/parser.
package session

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/intern"
	"github.com/solyn-lang/solyn/internal/lexer"
	"github.com/solyn-lang/solyn/internal/parser"
	"github.com/solyn-lang/solyn/internal/source"
)

// Options configure a session.
type Options struct {
	// Threads bounds how many files are parsed at once. 0 means one
	// worker per available CPU.
	Threads int

	// ErrorLimit stops the parsers once this many errors have been
	// emitted; the cut happens between items, never inside one. 0
	// means no limit.
	ErrorLimit int

	// CompilerVersion is the version checked against every
	// `pragma solidity` requirement. Empty disables the check.
	CompilerVersion string
}

// Session owns the state shared by every file of one compilation.
// Symbols, spans and diagnostics from different files are all
// comparable because they index the same interner, source map and
// sink.
type Session struct {
	SourceMap *source.SourceMap
	Interner  *intern.Interner
	Sink      *diag.Sink

	opts    Options
	version *semver.Version
}

// New creates a session. The interner starts with the keyword table so
// concurrent parsers hit only its read path for keywords.
func New(opts Options) (*Session, error) {
	s := &Session{
		SourceMap: source.NewSourceMap(),
		Interner:  intern.NewInterner(lexer.KeywordStrings()...),
		Sink:      diag.NewSink(opts.ErrorLimit),
		opts:      opts,
	}
	if opts.CompilerVersion != "" {
		v, err := semver.NewVersion(opts.CompilerVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid compiler version %q: %w", opts.CompilerVersion, err)
		}
		s.version = v
	}
	return s, nil
}

// File is one named input to a parse call.
type File struct {
	Name    string
	Content string
}

// FileResult is the parse outcome for one input file. Each result
// carries its own arena: the trees of different files share no
// storage, so a caller can drop one file's nodes without touching the
// others.
type FileResult struct {
	File  *source.SourceFile
	Arena *ast.Arena
	Unit  *ast.SourceUnit // Solidity inputs
	Yul   *ast.YulBlock   // Yul inputs
}

// ParseFiles parses Solidity files and returns one result per input,
// in input order. Files are parsed in parallel up to Options.Threads;
// a file that hits the nesting guard aborts alone, the other results
// stay valid. Diagnostics accumulate in the session sink.
func (s *Session) ParseFiles(files []File) []*FileResult {
	results := s.run(files, func(p *parser.Parser, r *FileResult) {
		r.Unit = p.ParseSourceUnit()
	})
	s.checkPragmas(results)
	s.checkLimit()
	return results
}

// ParseYulFiles is ParseFiles for standalone Yul inputs.
func (s *Session) ParseYulFiles(files []File) []*FileResult {
	results := s.run(files, func(p *parser.Parser, r *FileResult) {
		r.Yul = p.ParseYul()
	})
	s.checkLimit()
	return results
}

// run registers all files first, so global offsets depend only on
// input order, then parses them on the worker group. Per-file ASTs are
// identical whether the group runs wide or with one worker.
func (s *Session) run(files []File, parse func(*parser.Parser, *FileResult)) []*FileResult {
	results := make([]*FileResult, len(files))
	for i, f := range files {
		results[i] = &FileResult{
			File:  s.SourceMap.AddFile(f.Name, f.Content),
			Arena: ast.NewArena(),
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(s.threads())
	for _, r := range results {
		r := r
		g.Go(func() error {
			parse(parser.New(r.File, s.Interner, s.Sink, r.Arena), r)
			return nil
		})
	}
	// Workers only report through the sink.
	_ = g.Wait()
	return results
}

func (s *Session) threads() int {
	if s.opts.Threads > 0 {
		return s.opts.Threads
	}
	return runtime.GOMAXPROCS(0)
}

// checkLimit reports once, after the workers are done, that the error
// budget cut parsing short.
func (s *Session) checkLimit() {
	if !s.Sink.LimitReached() {
		return
	}
	s.Sink.Emit(diag.New(diag.Fatal, diag.CodeTooManyErrors, source.Span{},
		fmt.Sprintf("stopped after %d errors", s.opts.ErrorLimit)))
}

// checkPragmas warns for every `pragma solidity` requirement the
// session's compiler version does not satisfy. Only file-level pragmas
// are checked; misplaced ones were already rejected by the parser.
func (s *Session) checkPragmas(results []*FileResult) {
	if s.version == nil {
		return
	}
	for _, r := range results {
		if r.Unit == nil {
			continue
		}
		for _, item := range r.Unit.Items {
			pragma, ok := item.(*ast.PragmaDirective)
			if !ok || pragma.Req == nil {
				continue
			}
			if pragma.Req.Check(s.version) {
				continue
			}
			s.Sink.Emit(diag.New(diag.Warning, diag.CodeCompilerMismatch, pragma.Span,
				fmt.Sprintf("source requires compiler version %s, this is %s",
					pragma.Req, s.version)).
				WithHelp("change the pragma or compile with a matching version"))
		}
	}
}
