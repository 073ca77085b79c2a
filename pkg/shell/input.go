package shell

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type lineResult struct {
	line string
	err  error
}

// ReadLine reads one line from r with surrounding whitespace trimmed. A
// final line without a newline is returned as is; io.EOF is only reported
// when nothing was read. It returns ctx.Err() as soon as ctx is done, even
// while the read is still blocked. The abandoned read keeps r, so r must
// not be read again after a cancellation.
func ReadLine(ctx context.Context, r *bufio.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result := make(chan lineResult, 1)
	go func() {
		line, err := r.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		result <- lineResult{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-result:
		return res.line, res.err
	}
}
