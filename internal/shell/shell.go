// Package shell runs the interactive password generator menu.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const menu = `
Options:
1. Generate strong password (16 characters)
2. Generate simple password (8 characters)
3. Generate custom password
4. Apply transforms
5. Exit
`

// Shell reads menu choices from in and writes results to out.
type Shell struct {
	svc *service.GeneratorService
	in  *bufio.Reader
	out io.Writer
}

// New returns a Shell generating passwords through svc.
func New(svc *service.GeneratorService, in io.Reader, out io.Writer) *Shell {
	return &Shell{svc: svc, in: bufio.NewReader(in), out: out}
}

// Run loops until the user exits or input ends. Invalid input never stops
// the loop; only read failures are returned.
func (s *Shell) Run() error {
	s.println(" SECURE PASSWORD GENERATOR ")

	for {
		s.print(menu)
		choice, ok, err := s.prompt("\nChoose an option: ")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.generate("Generated password", service.PresetStrong)
		case "2":
			s.generate("Generated password", service.PresetSimple)
		case "3":
			if err := s.custom(); err != nil {
				return err
			}
		case "4":
			s.transforms()
		case "5":
			s.println("Thanks for using the password generator!")
			return nil
		default:
			s.println("Invalid option!")
		}
	}
}

func (s *Shell) generate(label, preset string) {
	resp, err := s.svc.Generate(model.GenerateRequest{Preset: preset})
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.printf("%s: %s\n", label, resp.Password)
}

func (s *Shell) custom() error {
	raw, ok, err := s.prompt("Password length: ")
	if err != nil || !ok {
		return err
	}
	length, err := strconv.Atoi(raw)
	if err != nil {
		s.printf("Error: invalid length %q\n", raw)
		return nil
	}

	req := model.GenerateRequest{Preset: service.PresetStrong, Length: length}
	for _, q := range []struct {
		label string
		dst   **bool
	}{
		{"Include symbols? (y/n): ", &req.Symbols},
		{"Include numbers? (y/n): ", &req.Numbers},
		{"Include uppercase? (y/n): ", &req.Uppercase},
		{"Include lowercase? (y/n): ", &req.Lowercase},
	} {
		answer, ok, err := s.prompt(q.label)
		if err != nil || !ok {
			return err
		}
		yes := isYes(answer)
		*q.dst = &yes
	}

	// A zero length would otherwise fall back to the preset's length.
	if length < 1 {
		s.printf("Error: %v\n", crypto.ErrInvalidLength)
		return nil
	}

	resp, err := s.svc.Generate(req)
	if errors.Is(err, crypto.ErrInvalidConfiguration) {
		s.printf("Error: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Custom password: %s\n", resp.Password)
	return nil
}

func (s *Shell) transforms() {
	resp, err := s.svc.Generate(model.GenerateRequest{Preset: service.PresetStrong})
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	t := s.svc.Showcase(resp.Password)
	s.printf("Original password: %s\n", t.Original)
	s.printf("Hashed password: %s\n", t.Hashed)
	s.printf("Salted password: %s\n", t.Salted)
	s.printf("Reversed password: %s\n", t.Reversed)
}

// prompt writes label and reads one trimmed line. ok is false once input is
// exhausted.
func (s *Shell) prompt(label string) (string, bool, error) {
	s.print(label)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, errors.Wrap(err, "reading input")
	}
	if err != nil && line == "" {
		s.println("")
		return "", false, nil
	}
	return strings.TrimSpace(line), true, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}

func (s *Shell) print(a string) { _, _ = io.WriteString(s.out, a) }
func (s *Shell) println(a string) { _, _ = fmt.Fprintln(s.out, a) }
func (s *Shell) printf(format string, a ...any) { _, _ = fmt.Fprintf(s.out, format, a...) }
