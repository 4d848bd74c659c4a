package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/howeyc/gopass"

	"github.com/daticahealth/snapdash/profile"
)

var stdin = os.Stdin
var promptOut io.Writer = os.Stdout

func prompt(label string, echo bool) (string, error) {
	if echo {
		fmt.Fprint(promptOut, label+": ")
		line, err := readLine(stdin)
		return strings.TrimSpace(line), err
	}
	passBytes, err := gopass.GetPasswdPrompt(label+": ", true, stdin, promptOut)
	return strings.TrimSpace(string(passBytes)), err
}

// readLine reads up to the next newline one byte at a time, so input meant for
// a following prompt stays unread.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(buf[0])
		}
		if err == io.EOF {
			if sb.Len() == 0 {
				return "", io.ErrUnexpectedEOF
			}
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// requireValue prompts for label until a non-empty value is entered.
func requireValue(label string, echo bool) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		val, err := prompt(label, echo)
		if err != nil {
			return "", err
		}
		if val != "" {
			return val, nil
		}
	}
	return "", errors.New(strings.ToLower(label) + " is required")
}

// verifyToken checks token against the profile service. Users without a
// profile pass; only a token the service refuses fails.
func verifyToken(ctx context.Context, token string) error {
	return profileClient(profile.StaticToken(token)).CheckToken(ctx)
}

func isTokenRejected(err error) bool {
	var rejected *profile.TokenRejectedError
	return errors.As(err, &rejected)
}
