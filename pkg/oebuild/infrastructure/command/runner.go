package command

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/pkg/errors"
)

type Command struct {
	WorkDir    string
	Executable string
	Args       []string
}

type Runner interface {
	Execute(ctx context.Context, command Command) (string, error)
}

func NewCommandRunner(logger applogger.Logger) Runner {
	return &runner{
		logger: logger,
	}
}

type runner struct {
	logger applogger.Logger
}

func (r runner) Execute(ctx context.Context, command Command) (string, error) {
	if command.Executable == "" {
		return "", stderrors.New("command executable can not be empty")
	}
	// nolint:gosec
	cmd := exec.CommandContext(ctx, command.Executable, command.Args...)
	cmd.Dir = command.WorkDir
	r.logger.Debug(cmd.String())
	result, err := cmd.Output()
	if err != nil {
		var exitError *exec.ExitError
		if stderrors.As(err, &exitError) && len(exitError.Stderr) > 0 {
			return "", errors.Wrapf(err, "%v: %s", command.Executable, bytes.TrimSpace(exitError.Stderr))
		}
		return "", err
	}
	return strings.TrimSpace(string(result)), nil
}
