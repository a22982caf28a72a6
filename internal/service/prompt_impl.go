package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// promptService is the implementation of the PromptService interface. Only
// the exact token "y" counts as affirmative.
type promptService struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptService creates a PromptService reading answers from in and
// writing prompts to out.
func NewPromptService(in io.Reader, out io.Writer) PromptService {
	return &promptService{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints the message and reads a single line.
func (s *promptService) Confirm(_ context.Context, message string) (bool, error) {
	if _, err := fmt.Fprint(s.out, message); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n") == "y", nil
}
