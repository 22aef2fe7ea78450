package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	apperrors "group-talk/errors"
	"group-talk/services"
	"io"
	"strings"
)

var errInputClosed = errors.New("input closed")

// signIn resumes the saved session or asks for credentials until the user is
// logged in. Errors are shown inline and the user tries again.
func signIn(ctx context.Context, in *bufio.Scanner, out io.Writer, svc services.IAuthService) (string, error) {
	if username, ok := svc.Resume(ctx); ok {
		_, _ = fmt.Fprintf(out, "Welcome back %s\n", username)
		return username, nil
	}
	for {
		choice, err := ask(in, out, "(l)ogin or (r)egister? ")
		if err != nil {
			return "", err
		}
		username, err := ask(in, out, "username: ")
		if err != nil {
			return "", err
		}
		password, err := ask(in, out, "password: ")
		if err != nil {
			return "", err
		}

		if strings.HasPrefix(strings.ToLower(choice), "r") {
			if err = svc.Register(ctx, username, password); err != nil {
				_, _ = fmt.Fprintf(out, "Registration failed: %s\n", userMessage(err))
				continue
			}
		}
		if _, err = svc.Login(ctx, username, password); err != nil {
			_, _ = fmt.Fprintf(out, "Login failed: %s\n", userMessage(err))
			continue
		}
		return username, nil
	}
}

func ask(in *bufio.Scanner, out io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(out, prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(in.Text()), nil
}

// userMessage hides internal details of remote failures.
func userMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrAuth):
		return err.Error()
	default:
		return "something went wrong, try again"
	}
}
