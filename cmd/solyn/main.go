// Package main provides the entry point for the Solyn compiler front end.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/solyn-lang/solyn/internal/ast"
	"github.com/solyn-lang/solyn/internal/config"
	"github.com/solyn-lang/solyn/internal/diag"
	"github.com/solyn-lang/solyn/internal/session"
	"github.com/solyn-lang/solyn/internal/source"
)

var (
	version = "0.1.0-alpha"
	commit  = "dev"

	// langVersion is the Solidity release whose grammar this front end
	// implements; pragma checks compare against it. Kept free of
	// prerelease tags so caret ranges match it.
	langVersion = "0.8.30"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		showHelp    = flag.Bool("help", false, "show help information")
		configDir   = flag.String("config", ".", "project directory holding solyn.toml")
		yulMode     = flag.Bool("yul", false, "treat inputs as standalone Yul")
		dumpAST     = flag.Bool("dump-ast", false, "print the syntax tree of every input")
		jsonOut     = flag.Bool("json", false, "emit diagnostics as JSON lines on stdout")
		colorOut    = flag.Bool("color", false, "force colored diagnostics")
		quietFlag   = flag.Bool("quiet", false, "suppress status and summary output")
		watchMode   = flag.Bool("watch", false, "re-parse whenever an input changes")
		threads     = flag.Int("threads", -1, "parse workers, 0 for one per CPU")
		errorLimit  = flag.Int("error-limit", -1, "stop after this many errors, 0 for no limit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("Solyn v%s (%s)\n", version, commit)
		fmt.Printf("Solidity language version %s\n", langVersion)
		return
	}

	if *showHelp {
		showUsage()
		return
	}

	proj, err := loadProject(*configDir)
	if err != nil {
		log.Fatalf("Loading project failed: %v", err)
	}

	// Flags override the project file.
	if *threads >= 0 {
		proj.Threads = *threads
	}
	if *errorLimit >= 0 {
		proj.ErrorLimit = *errorLimit
	}

	// JSON diagnostics own stdout.
	quiet = *quietFlag || *jsonOut

	d := &driver{
		proj:    proj,
		args:    flag.Args(),
		yul:     *yulMode,
		dumpAST: *dumpAST,
		jsonOut: *jsonOut,
		color:   *colorOut,
	}

	printHeader(proj)

	clean, err := d.run()
	if err != nil {
		log.Fatalf("Parsing failed: %v", err)
	}

	if *watchMode {
		if err := d.watch(); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
		return
	}

	if !clean {
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println("Solyn - Solidity compiler front end")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    solyn [OPTIONS] [INPUT_FILES...]")
	fmt.Println()
	fmt.Println("Without input files the source directories of solyn.toml are parsed.")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version        Show version information")
	fmt.Println("    --help           Show this help message")
	fmt.Println("    --config DIR     Project directory holding solyn.toml (default \".\")")
	fmt.Println("    --yul            Treat inputs as standalone Yul")
	fmt.Println("    --dump-ast       Print the syntax tree of every input")
	fmt.Println("    --json           Emit diagnostics as JSON lines on stdout")
	fmt.Println("    --color          Force colored diagnostics")
	fmt.Println("    --quiet          Suppress status and summary output")
	fmt.Println("    --watch          Re-parse whenever an input changes")
	fmt.Println("    --threads N      Parse workers, 0 for one per CPU (overrides solyn.toml)")
	fmt.Println("    --error-limit N  Stop after N errors, 0 for no limit (overrides solyn.toml)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    solyn contracts/Token.sol")
	fmt.Println("    solyn --dump-ast --quiet contracts/Token.sol")
	fmt.Println("    solyn --json 2>/dev/null > diagnostics.ndjson")
	fmt.Println("    solyn --watch")
}

// loadProject reads the project file from dir, falling back to the
// built-in defaults when there is none.
func loadProject(dir string) (*config.Project, error) {
	proj, err := config.Load(dir)
	if errors.Is(err, fs.ErrNotExist) {
		proj = config.Default()
		proj.Root = dir
		return proj, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Join(dir, config.FileName), err)
	}
	return proj, nil
}

// driver holds the resolved configuration for one invocation.
type driver struct {
	proj    *config.Project
	args    []string // explicit input files, empty when globbing sources
	yul     bool
	dumpAST bool
	jsonOut bool
	color   bool
}

func (d *driver) ext() string {
	if d.yul {
		return ".yul"
	}
	return ".sol"
}

// resolveInputs returns the files to parse: the explicit arguments when
// given, otherwise the project source directories walked anew so a
// watch cycle picks up created files.
func (d *driver) resolveInputs() ([]string, error) {
	if len(d.args) > 0 {
		return d.args, nil
	}
	return d.proj.SourceFiles(d.ext())
}

// run resolves the inputs and parses them once, rendering diagnostics
// and the summary. It reports whether the parse was error-free.
func (d *driver) run() (bool, error) {
	start := time.Now()

	inputs, err := d.resolveInputs()
	if err != nil {
		return false, err
	}
	if len(inputs) == 0 {
		return false, fmt.Errorf("no %s files under %s", d.ext(), d.proj.Root)
	}

	loader := source.NewLoader()
	// Diagnostic rendering reads the loaded contents, so the loader
	// stays open until the end of the run.
	defer loader.Close()

	files := make([]session.File, 0, len(inputs))
	for _, path := range inputs {
		content, err := loader.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", path, err)
		}
		files = append(files, session.File{Name: path, Content: content})
	}

	sess, err := session.New(session.Options{
		Threads:         d.proj.Threads,
		ErrorLimit:      d.proj.ErrorLimit,
		CompilerVersion: langVersion,
	})
	if err != nil {
		return false, err
	}

	var results []*session.FileResult
	if d.yul {
		results = sess.ParseYulFiles(files)
	} else {
		results = sess.ParseFiles(files)
	}

	if d.dumpAST {
		if err := d.dump(sess, results); err != nil {
			return false, err
		}
	}

	if err := d.emit(sess); err != nil {
		return false, err
	}

	printStatus(len(files), time.Since(start))
	printSummary(sess.Sink.ErrorCount(), sess.Sink.WarningCount())

	return !sess.Sink.HasErrors(), nil
}

// dump prints the syntax tree of every parsed file to stdout.
func (d *driver) dump(sess *session.Session, results []*session.FileResult) error {
	for _, r := range results {
		var node ast.Node
		switch {
		case r.Unit != nil:
			node = r.Unit
		case r.Yul != nil:
			node = r.Yul
		default:
			continue
		}
		fmt.Printf("==> %s\n", r.File.Name)
		if err := ast.Fprint(os.Stdout, sess.Interner, node); err != nil {
			return err
		}
	}
	return nil
}

// emit renders every collected diagnostic in source order.
func (d *driver) emit(sess *session.Session) error {
	diags := sess.Sink.Sorted()
	if len(diags) == 0 {
		return nil
	}

	var em diag.Emitter
	if d.jsonOut {
		em = diag.NewJSONEmitter(os.Stdout, sess.SourceMap)
	} else {
		he := diag.NewHumanEmitter(os.Stderr, sess.SourceMap)
		he.Color = d.color
		em = he
	}

	if err := diag.EmitAll(em, diags); err != nil {
		return fmt.Errorf("rendering diagnostics: %w", err)
	}
	return nil
}
