// Package shell runs the interactive catalog prompt over a line-oriented stream.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/patterns/pkg/core"
)

const (
	promptCommand = "Enter command (add, remove, show, exit): "
	promptTitle   = "Enter book title: "
	promptAuthor  = "Enter book author: "
	promptYear    = "Enter book year: "
	promptRemove  = "Enter book title to remove: "

	invalidCommandNotice = "Invalid command. Please try again."
)

// Session is a single run of the prompt loop.
// It has one state, awaiting a command, until exit or end of input.
type Session struct {
	id      string
	manager *core.Manager
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the base logger; the session adds its own id to it.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a prompt loop reading commands from in and writing prompts to out.
func NewSession(manager *core.Manager, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		manager: manager,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the random identifier attached to every log record of the session.
func (s *Session) ID() string {
	return s.id
}

// Run reads and dispatches commands until exit, end of input, or ctx is done.
// End of input ends the session cleanly, like exit.
func (s *Session) Run(ctx context.Context) error {
	for {
		line, err := s.prompt(ctx, promptCommand)
		if err != nil {
			return s.stop(ctx, err)
		}

		switch cmd := ParseCommand(line); cmd {
		case CommandAdd:
			err = s.add(ctx)
		case CommandRemove:
			err = s.remove(ctx)
		case CommandShow:
			err = s.manager.ShowBooks(ctx)
		case CommandExit:
			s.logger.InfoContext(ctx, "exiting program")
			return nil
		default:
			s.logger.WarnContext(ctx, "invalid command entered", "input", line)
			_, err = fmt.Fprintln(s.out, invalidCommandNotice)
		}
		if err != nil {
			return s.stop(ctx, err)
		}
	}
}

func (s *Session) add(ctx context.Context) error {
	title, err := s.prompt(ctx, promptTitle)
	if err != nil {
		return err
	}
	author, err := s.prompt(ctx, promptAuthor)
	if err != nil {
		return err
	}
	year, err := s.prompt(ctx, promptYear)
	if err != nil {
		return err
	}
	return s.manager.AddBook(ctx, title, author, year)
}

func (s *Session) remove(ctx context.Context) error {
	title, err := s.prompt(ctx, promptRemove)
	if err != nil {
		return err
	}
	_, err = s.manager.RemoveBook(ctx, title)
	return err
}

// prompt writes p and returns the next trimmed line.
// It returns io.EOF once the input is exhausted.
func (s *Session) prompt(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(s.out, p); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	// Lines have no length limit; a final line without a newline still counts.
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// stop turns end of input into a clean exit and passes every other error through.
func (s *Session) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.InfoContext(ctx, "input closed")
		return nil
	}
	return err
}
