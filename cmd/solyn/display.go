package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/solyn-lang/solyn/internal/config"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG    = successColorFG
	infoStyleBG    = successStyleBG
)

// quiet suppresses status and summary output. Diagnostics and AST
// dumps still print.
var quiet bool

// printInfo prints a tag-prefixed status line.
func printInfo(tag, msg string) {
	if quiet {
		return
	}
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}

// printError reports a non-fatal driver error on stderr.
func printError(tag string, err error) {
	fmt.Fprint(os.Stderr, errorStyleBG.Sprint(tag), errorColorFG.Sprintln(" "+err.Error()))
}

// printHeader shows the tool banner before the first parse.
func printHeader(proj *config.Project) {
	if quiet {
		return
	}
	fmt.Print("solyn ")
	infoColorFG.Print("v" + version)
	fmt.Print(" -- solidity ")
	infoColorFG.Println(langVersion)

	if proj.Name != "" {
		fmt.Print("project: ")
		infoColorFG.Println(proj.Name)
	}
}

// printStatus reports one parse cycle.
func printStatus(fileCount int, elapsed time.Duration) {
	printInfo("Parse", fmt.Sprintf("%d files (%.3fs)", fileCount, elapsed.Seconds()))
}

// printSummary reports the outcome with error and warning counts.
func printSummary(errorCount, warningCount int) {
	if quiet {
		return
	}
	fmt.Print("\n")

	if errorCount == 0 {
		successColorFG.Print("All done! ")
	} else {
		errorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		successColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		errorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		errorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		successColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		warnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		warnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}
}
