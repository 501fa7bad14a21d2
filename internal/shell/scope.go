package shell

import (
	"fmt"
	"os"
	goruntime "runtime"
)

// CommandSpec is one allowlisted external command.
type CommandSpec struct {
	// Name is the identifier the frontend calls the command by.
	Name string `json:"name"`
	// Cmd is the program to start. Empty means the user's default shell.
	Cmd string `json:"cmd,omitempty"`
	// Args are fixed leading arguments, always passed.
	Args []string `json:"args,omitempty"`
	// AllowExtraArgs permits the frontend to append its own arguments.
	AllowExtraArgs bool `json:"allowExtraArgs,omitempty"`
}

// Scope is the set of operations the embedded page may request. The zero
// value denies everything.
type Scope struct {
	Commands []CommandSpec `json:"commands,omitempty"`
	// OpenURLs permits opening http(s) addresses in the system browser.
	OpenURLs bool `json:"openUrls,omitempty"`
}

// resolve maps a frontend command name to the process to start.
func (s Scope) resolve(name string, extra []string) (string, []string, error) {
	for _, c := range s.Commands {
		if c.Name != name {
			continue
		}
		if len(extra) > 0 && !c.AllowExtraArgs {
			return "", nil, fmt.Errorf("command %q does not accept arguments", name)
		}
		bin := c.Cmd
		if bin == "" {
			bin = DefaultShell()
		}
		args := append(append([]string{}, c.Args...), extra...)
		return bin, args, nil
	}
	return "", nil, fmt.Errorf("command %q is not allowed", name)
}

// DefaultShell returns the shell used for command specs without an explicit
// program.
func DefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}

	if goruntime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}

	return "/bin/bash"
}
