package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх stdin/stdout процесса
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewStdio создает IO для стандартных потоков
func NewStdio() IO {
	return newStdio(os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

func newStdio(in io.Reader, out io.Writer, fd int) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает ключ без эха. Если stdin не терминал (ключ передан через pipe),
// читается обычная строка.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if !term.IsTerminal(s.fd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
