package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/safing/portbase/log"

	"github.com/katalvlaran/lvroute/apsp"
	"github.com/katalvlaran/lvroute/roadmap"
)

const menuText = `=== MENU ===
1. Find route
2. List locations
3. Show distance table
4. Exit
Choose an option: `

// shell is the interactive menu loop over one loaded map.
type shell struct {
	a   *app
	in  *bufio.Scanner
	out io.Writer
}

func newShell(a *app, in io.Reader, out io.Writer) *shell {
	return &shell{a: a, in: bufio.NewScanner(in), out: out}
}

// readLine prompts and returns the next trimmed input line; ok is false at
// end of input.
func (s *shell) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

// run loops until option 4 or end of input.
func (s *shell) run() error {
	fmt.Fprintf(s.out, "=== LVROUTE ===\n%d locations loaded.\n\n", s.a.m.Len())
	for {
		line, ok := s.readLine(menuText)
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		option, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input, enter a number.")
			continue
		}

		switch option {
		case 1:
			if !s.route() {
				return s.in.Err()
			}
		case 2:
			printLocations(s.out, s.a)
		case 3:
			if err = printTable(s.out, s.a.eng); err != nil {
				return err
			}
		case 4:
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option, choose 1-4.")
			fmt.Fprintln(s.out)
		}
	}
}

// route asks for origin and destination and prints the result. It returns
// false when input ended while prompting.
func (s *shell) route() bool {
	from, ok := s.readLine("\nOrigin (e.g. Sao_Paulo): ")
	if !ok {
		return false
	}
	to, ok := s.readLine("Destination (e.g. Rio_de_Janeiro): ")
	if !ok {
		return false
	}

	route, err := s.a.eng.QueryByName(from, to)
	switch {
	case err == nil:
		printRoute(s.out, route)
	case errors.Is(err, roadmap.ErrNotFound):
		fmt.Fprintf(s.out, "Location not found: %s\n", err)
		fmt.Fprintf(s.out, "Hint: names like %s; option 2 lists them all.\n\n", strings.Join(s.hintNames(), ", "))
	case errors.Is(err, apsp.ErrNoPath):
		fmt.Fprintf(s.out, "No route available between %s and %s.\n\n", from, to)
	default:
		log.Warningf("lvroute: query %q → %q failed: %s", from, to, err)
		fmt.Fprintf(s.out, "Query failed: %s\n\n", err)
	}

	return true
}

// hintNames returns up to two location names for error hints.
func (s *shell) hintNames() []string {
	names := s.a.m.Names()
	if len(names) > 2 {
		names = names[:2]
	}

	return names
}
