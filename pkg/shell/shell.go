// Package shell drives a BoundedStack from a numbered text menu.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/alibaba/arraystack/pkg/stack"
)

const menu = "1. Push\n2. Pop\n3. Display\n4. Exit\nEnter your choice: "

const (
	choicePush    = "1"
	choicePop     = "2"
	choiceDisplay = "3"
	choiceExit    = "4"
)

// Format selects how Display renders the stack contents.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q, support text/json", s)
	}
}

// Option configures a Shell.
type Option func(*Shell)

// WithFormat sets the Display format, FormatText by default.
func WithFormat(f Format) Option {
	return func(s *Shell) {
		s.format = f
	}
}

// WithMetrics records every operation into m.
func WithMetrics(m *Metrics) Option {
	return func(s *Shell) {
		s.metrics = m
	}
}

// WithLogger replaces the default logger tagged with a random session id.
func WithLogger(l *log.Entry) Option {
	return func(s *Shell) {
		s.logger = l
	}
}

// Shell is a single interactive session over one stack.
type Shell struct {
	stack   *stack.BoundedStack
	in      *bufio.Reader
	out     io.Writer
	format  Format
	metrics *Metrics
	logger  *log.Entry
}

// New returns a session reading choices from in. A *bufio.Reader is used
// directly so input already buffered by the caller is not lost.
func New(st *stack.BoundedStack, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		stack:  st,
		in:     bufio.NewReader(in),
		out:    out,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.WithField("session", uuid.NewString())
	}
	if s.metrics != nil {
		s.metrics.capacity.Set(float64(st.Cap()))
	}
	return s
}

// Run serves menu choices until Exit is chosen or the input is exhausted.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Debugf("shell started with capacity %d", s.stack.Cap())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("%s", menu)
		choice, err := ReadLine(ctx, s.in)
		if err != nil {
			return s.stop(err)
		}

		switch choice {
		case choicePush:
			if err := s.push(ctx); err != nil {
				return s.stop(err)
			}
		case choicePop:
			s.pop()
		case choiceDisplay:
			if err := s.display(); err != nil {
				return err
			}
		case choiceExit:
			s.logger.Debug("exit requested")
			return nil
		default:
			s.logger.WithField("length", len(choice)).Debug("invalid choice")
			s.println("Invalid choice")
		}
	}
}

// stop ends the session, end of input is a normal exit.
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed, exiting")
		return nil
	}
	return err
}

func (s *Shell) push(ctx context.Context) error {
	s.printf("Enter value to push: ")
	line, err := ReadLine(ctx, s.in)
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		s.logger.WithField("length", len(line)).Debug("invalid value")
		s.record("push", resultInvalid)
		s.println("Invalid value")
		return nil
	}

	entry := s.logger.WithFields(log.Fields{"op": "push", "value": value})
	if err := s.stack.Push(value); err != nil {
		if errors.Is(err, stack.ErrStackOverflow) {
			entry.WithField("size", s.stack.Len()).Debug("stack is full")
			s.record("push", resultOverflow)
			s.println("Stack Overflow")
			return nil
		}
		return err
	}
	entry.WithField("size", s.stack.Len()).Debug("pushed")
	s.record("push", resultOK)
	s.printf("Pushed %d to stack\n", value)
	return nil
}

func (s *Shell) pop() {
	entry := s.logger.WithField("op", "pop")
	value, err := s.stack.Pop()
	if err != nil {
		if errors.Is(err, stack.ErrStackUnderflow) {
			entry.Debug("stack is empty")
			s.record("pop", resultUnderflow)
			s.println("Stack Underflow")
			return
		}
		entry.Errorf("pop failed: %v", err)
		return
	}
	entry.WithFields(log.Fields{"value": value, "size": s.stack.Len()}).Debug("popped")
	s.record("pop", resultOK)
	s.printf("Popped %d from stack\n", value)
}

func (s *Shell) display() error {
	contents := s.stack.Peek()
	s.record("display", resultOK)

	if s.format == FormatJSON {
		data, err := jsoniter.Marshal(contents)
		if err != nil {
			return errors.Wrap(err, "failed marshal stack contents")
		}
		s.println(string(data))
		return nil
	}

	if len(contents) == 0 {
		s.println("Stack is empty")
		return nil
	}
	s.printf("Stack elements: %s\n", strings.Join(lo.Map(contents, func(v int, _ int) string {
		return strconv.Itoa(v)
	}), " "))
	return nil
}

func (s *Shell) record(op, result string) {
	if s.metrics != nil {
		s.metrics.observe(op, result, s.stack.Len())
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}
