// Package shell lets the embedded page run a constrained set of external
// commands. Everything outside the configured scope is rejected.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"sync"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Output is the result of a completed command.
type Output struct {
	Code   int    `json:"code"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// Service executes scope-checked shell commands on behalf of the frontend.
// Its exported methods are bound to the page.
type Service struct {
	ctx   context.Context
	scope Scope
	log   logger.Logger

	emit        func(ctx context.Context, event string, data ...interface{})
	openBrowser func(ctx context.Context, url string)

	mu    sync.Mutex
	procs map[string]*exec.Cmd
}

func NewService(scope Scope, log logger.Logger) *Service {
	return &Service{
		scope:       scope,
		log:         log,
		emit:        runtime.EventsEmit,
		openBrowser: runtime.BrowserOpenURL,
		procs:       make(map[string]*exec.Cmd),
	}
}

// Startup stores the runtime context used for event emission.
func (s *Service) Startup(ctx context.Context) {
	s.ctx = ctx
}

// Execute runs an allowlisted command to completion and returns its output.
func (s *Service) Execute(name string, args []string) (Output, error) {
	bin, argv, err := s.scope.resolve(name, args)
	if err != nil {
		return Output{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.log.Info(fmt.Sprintf("[Shell] Executing %s (%s)", name, bin))

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Output{}, fmt.Errorf("run %s: %w", bin, err)
		}
		code = exitErr.ExitCode()
	}
	return Output{Code: code, Stdout: stdout.String(), Stderr: stderr.String()}, nil
}

// Spawn starts an allowlisted command without waiting for it. Output lines
// are streamed to the page as "shell:stdout:<id>" and "shell:stderr:<id>"
// events; termination is reported as "shell:exit:<id>" with the exit code.
func (s *Service) Spawn(name string, args []string) (string, error) {
	bin, argv, err := s.scope.resolve(name, args)
	if err != nil {
		return "", err
	}

	cmd := exec.Command(bin, argv...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start %s: %w", bin, err)
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.procs[id] = cmd
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("[Shell] Spawned %s (%s) as %s", name, bin, id))

	var readers sync.WaitGroup
	readers.Add(2)
	go s.stream("shell:stdout:"+id, stdout, &readers)
	go s.stream("shell:stderr:"+id, stderr, &readers)

	go func() {
		readers.Wait()
		err := cmd.Wait()

		s.mu.Lock()
		delete(s.procs, id)
		s.mu.Unlock()

		code := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		s.emit(s.ctx, "shell:exit:"+id, code)
	}()

	return id, nil
}

func (s *Service) stream(event string, r io.Reader, readers *sync.WaitGroup) {
	defer readers.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.emit(s.ctx, event, scanner.Text())
	}
}

// Kill terminates a spawned command.
func (s *Service) Kill(id string) error {
	s.mu.Lock()
	cmd, ok := s.procs[id]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("no running command %q", id)
	}
	return cmd.Process.Kill()
}

// Open opens an http(s) address in the system browser.
func (s *Service) Open(target string) error {
	if !s.scope.OpenURLs {
		return errors.New("opening URLs is not allowed")
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("parse %q: %w", target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: not an http(s) address", target)
	}
	s.openBrowser(s.ctx, u.String())
	return nil
}

// Cleanup kills commands that outlived the window.
func (s *Service) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, cmd := range s.procs {
		s.log.Info(fmt.Sprintf("[Shell] Killing leftover command %s", id))
		_ = cmd.Process.Kill()
	}
}
