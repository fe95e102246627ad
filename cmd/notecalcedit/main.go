// Command notecalcedit is a small, non-interactive demo driver for the
// editor engine core: it loads a text file into a Content buffer, applies
// a newline-delimited script of edit operations, and prints the resulting
// document and cursor position. It exists to give the config loader and
// the engine packages a realistic, testable entry point: a thin main
// package wrapped around a richly tested internal/ core.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/editor"
	"github.com/bbodi/notecalc3-sub001/internal/editorconfig"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML settings file (optional)")
	filePath := flag.String("file", "", "path to the text file to load (required)")
	scriptPath := flag.String("script", "", "path to a newline-delimited operation script (optional)")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return 1
	}

	cfg := editorconfig.Default()
	if *configPath != "" {
		loaded, err := editorconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	text, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", *filePath, err)
		return 1
	}

	c := content.New[struct{}](cfg.MaxLineLen, content.WithInitialText[struct{}](string(text)))
	e := editor.New[struct{}]()

	if *scriptPath != "" {
		ops, err := readScript(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read script: %v\n", err)
			return 1
		}
		for _, op := range ops {
			if err := applyOp(e, c, op); err != nil {
				fmt.Fprintf(os.Stderr, "Error: script operation %q failed: %v\n", op, err)
				return 1
			}
		}
	}

	fmt.Print(c.GetContent())
	fmt.Println()
	pos := e.GetSelection().GetCursorPos()
	fmt.Fprintf(os.Stdout, "cursor: (%d, %d)\n", pos.Row, pos.Column)
	return 0
}

func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ops []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ops = append(ops, line)
	}
	return ops, scanner.Err()
}

// applyOp interprets one script line as a HandleInput call against c.
func applyOp(e *editor.Editor[struct{}], c *content.Content[struct{}], op string) error {
	fields := strings.Fields(op)
	if len(fields) == 0 {
		return nil
	}

	mods := editor.Modifiers{}
	for len(fields) > 1 {
		switch fields[0] {
		case "ctrl":
			mods.Ctrl = true
		case "shift":
			mods.Shift = true
		case "alt":
			mods.Alt = true
		default:
			goto matched
		}
		fields = fields[1:]
	}
matched:

	switch fields[0] {
	case "left":
		e.HandleInput(editor.Event{Key: editor.KeyLeft}, mods, c)
	case "right":
		e.HandleInput(editor.Event{Key: editor.KeyRight}, mods, c)
	case "up":
		e.HandleInput(editor.Event{Key: editor.KeyUp}, mods, c)
	case "down":
		e.HandleInput(editor.Event{Key: editor.KeyDown}, mods, c)
	case "home":
		e.HandleInput(editor.Event{Key: editor.KeyHome}, mods, c)
	case "end":
		e.HandleInput(editor.Event{Key: editor.KeyEnd}, mods, c)
	case "pageup":
		e.HandleInput(editor.Event{Key: editor.KeyPageUp}, mods, c)
	case "pagedown":
		e.HandleInput(editor.Event{Key: editor.KeyPageDown}, mods, c)
	case "enter":
		e.HandleInput(editor.Event{Key: editor.KeyEnter}, mods, c)
	case "backspace":
		e.HandleInput(editor.Event{Key: editor.KeyBackspace}, mods, c)
	case "del":
		e.HandleInput(editor.Event{Key: editor.KeyDel}, mods, c)
	case "tab":
		e.HandleInput(editor.Event{Key: editor.KeyTab}, mods, c)
	case "esc":
		e.HandleInput(editor.Event{Key: editor.KeyEsc}, mods, c)
	case "undo":
		e.HandleInput(editor.Event{Key: editor.KeyChar, Ch: 'z'}, editor.Modifiers{Ctrl: true}, c)
	case "redo":
		e.HandleInput(editor.Event{Key: editor.KeyChar, Ch: 'Z'}, editor.Modifiers{Ctrl: true}, c)
	case "char":
		if len(fields) < 2 {
			return fmt.Errorf("char requires an argument")
		}
		ch := []rune(fields[1])[0]
		e.HandleInput(editor.CharEvent(ch), mods, c)
	case "goto":
		if len(fields) < 3 {
			return fmt.Errorf("goto requires row and column")
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		e.SetCursorPos(selection.NewPos(uint32(row), uint32(col)))
	default:
		return fmt.Errorf("unknown operation %q", fields[0])
	}
	return nil
}
