package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before a valid answer is read.
var ErrNoInput = errors.New("no input")

// ReadInt writes question to w and reads lines from r until one holds a
// positive integer.
func ReadInt(r *bufio.Reader, w io.Writer, question string) (int, error) {
	for {
		if _, err := fmt.Fprint(w, question); err != nil {
			return 0, err
		}

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read answer: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n > 0 {
			return n, nil
		}
		if err != nil {
			fmt.Fprintln(w)
			return 0, fmt.Errorf("%s: %w", strings.TrimSpace(question), ErrNoInput)
		}

		fmt.Fprintln(w, "Please enter a positive whole number.")
	}
}
