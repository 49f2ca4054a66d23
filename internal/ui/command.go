package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const annotationAuth = "gardentrack/requires-auth"

// RequireAuth marks cmd as available only to a signed-in user. The root
// command enforces the mark before cmd runs.
func RequireAuth(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationAuth] = "true"
	return cmd
}

func NeedsAuth(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationAuth] == "true"
}

// Println writes a rendered block followed by a newline to the command's
// output stream.
func Println(cmd *cobra.Command, block string) {
	Fprintln(cmd.OutOrStdout(), block)
}

func Fprintln(w io.Writer, block string) {
	_, _ = fmt.Fprintln(w, block)
}

type shellKey struct{}

// WithShell marks ctx as running inside the interactive shell, which owns
// standard input.
func WithShell(ctx context.Context) context.Context {
	return context.WithValue(ctx, shellKey{}, true)
}

func InShell(ctx context.Context) bool {
	v, _ := ctx.Value(shellKey{}).(bool)
	return v
}
