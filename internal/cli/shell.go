package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

var errBadLine = errors.New("cannot parse line")

// Shell reads one command per line from in until EOF, "exit" or "quit". Each
// line runs against a fresh command tree sharing the same store and session.
func (a *App) Shell(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx = ui.WithShell(ctx)
	lines := bufio.NewScanner(in)

	ui.Fprintln(out, ui.Title(a.name, "Type `help` for commands, `exit` to leave."))
	for {
		_, _ = fmt.Fprint(out, a.prompt())
		if !lines.Scan() {
			ui.Fprintln(out, "")
			break
		}

		line := strings.TrimSpace(lines.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		args, err := splitArgs(line)
		if err != nil {
			ui.Fprintln(out, ui.Error(err.Error()))
			continue
		}

		root := a.Root()
		root.SetArgs(args)
		root.SetIn(in)
		root.SetOut(out)
		root.SetErr(out)
		if err := root.ExecuteContext(ctx); err != nil {
			a.logger.Debug("shell command failed", zap.String("line", line), zap.Error(err))
			ui.Fprintln(out, ui.Error(err.Error()))
		}

		if ctx.Err() != nil {
			return nil
		}
	}
	return lines.Err()
}

func (a *App) prompt() string {
	who := "guest"
	if id, ok := a.sessions.Current(); ok {
		who = id.Email
	}
	return ui.TitleStyle.Render("gardentrack") + ui.MutedStyle.Render(" ("+who+")") + "> "
}

// splitArgs splits a shell line into words with POSIX-style quoting. Pipes,
// redirects and command separators are not supported.
func splitArgs(line string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadLine, err)
	}
	if p.Position >= 0 {
		return nil, fmt.Errorf("%w: pipes, redirects and separators are not supported", errBadLine)
	}
	return args, nil
}
