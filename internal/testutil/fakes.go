package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/exec"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/prompt"
)

// FakePrompts answers questions from fixed maps and records what was asked.
type FakePrompts struct {
	Text    map[string]string
	Confirm map[string]bool

	// Err, when set, is returned by every question.
	Err error

	mu    sync.Mutex
	Asked []string
}

// NewFakePrompts returns prompts answering the author questions with the
// given values and both confirmations with false.
func NewFakePrompts(text map[string]string) *FakePrompts {
	if text == nil {
		text = map[string]string{}
	}
	return &FakePrompts{Text: text, Confirm: map[string]bool{}}
}

// DataSyncAnswers are the answers used by the end-to-end scenarios.
func DataSyncAnswers() map[string]string {
	return map[string]string{
		prompt.KeyDescription: "Synchronizes data between stores",
		prompt.KeyFirstName:   "Jane",
		prompt.KeyLastName:    "Doe",
		prompt.KeyEmail:       "jane@example.com",
		prompt.KeyAlias:       "jdoe",
	}
}

// AskText returns the scripted answer for q, or q.Default.
func (f *FakePrompts) AskText(ctx context.Context, q prompt.Question) (string, error) {
	f.record(q.Key)
	if f.Err != nil {
		return "", f.Err
	}
	if v, ok := f.Text[q.Key]; ok {
		return v, nil
	}
	return q.Default, nil
}

// AskConfirm returns the scripted answer for c, or c.Default.
func (f *FakePrompts) AskConfirm(ctx context.Context, c prompt.Confirmation) (bool, error) {
	f.record(c.Key)
	if f.Err != nil {
		return false, f.Err
	}
	if v, ok := f.Confirm[c.Key]; ok {
		return v, nil
	}
	return c.Default, nil
}

func (f *FakePrompts) record(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Asked = append(f.Asked, key)
}

// Call is one recorded FakeRunner invocation.
type Call struct {
	Name string
	Args []string
	Opts exec.RunOpts
}

// String renders the call as a command line.
func (c Call) String() string {
	return exec.CommandLine(c.Name, c.Args)
}

// FakeRunner records commands instead of running them. Results are looked
// up by command line; unknown commands succeed with empty output.
type FakeRunner struct {
	Results map[string]exec.CmdResult
	Errors  map[string]error

	mu    sync.Mutex
	Calls []Call
}

// NewFakeRunner returns a runner where every command succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Results: map[string]exec.CmdResult{},
		Errors:  map[string]error{},
	}
}

// Fail makes the command line exit with code and stderr.
func (f *FakeRunner) Fail(cmdline string, code int, stderr string) *FakeRunner {
	f.Results[cmdline] = exec.CmdResult{ExitCode: code, Stderr: stderr}
	return f
}

// Break makes the command line fail to start.
func (f *FakeRunner) Break(cmdline string, err error) *FakeRunner {
	f.Errors[cmdline] = err
	return f
}

// Run records the call and returns the scripted outcome.
func (f *FakeRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Opts: opts}

	f.mu.Lock()
	f.Calls = append(f.Calls, call)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return exec.CmdResult{}, err
	}

	key := call.String()
	if err, ok := f.Errors[key]; ok {
		return exec.CmdResult{}, err
	}
	if res, ok := f.Results[key]; ok {
		return res, nil
	}
	return exec.CmdResult{}, nil
}

// CommandLines returns the recorded calls as command lines.
func (f *FakeRunner) CommandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}

// RecordingStore wraps a file store and logs mutating calls.
type RecordingStore struct {
	Store interface {
		ReadText(path string) (string, error)
		WriteText(path, text string) error
		Rename(oldPath, newPath string) error
		Remove(path string, recursive bool) error
		Exists(path string) (bool, error)
	}

	// FailOn makes the named operation on a path fail, e.g. "write Cargo.toml".
	FailOn map[string]error

	Ops []string
}

// ReadText delegates to the wrapped store.
func (r *RecordingStore) ReadText(path string) (string, error) {
	if err := r.fail("read " + path); err != nil {
		return "", err
	}
	return r.Store.ReadText(path)
}

// WriteText records and delegates.
func (r *RecordingStore) WriteText(path, text string) error {
	r.Ops = append(r.Ops, "write "+path)
	if err := r.fail("write " + path); err != nil {
		return err
	}
	return r.Store.WriteText(path, text)
}

// Rename records and delegates.
func (r *RecordingStore) Rename(oldPath, newPath string) error {
	r.Ops = append(r.Ops, fmt.Sprintf("rename %s %s", oldPath, newPath))
	if err := r.fail("rename " + oldPath); err != nil {
		return err
	}
	return r.Store.Rename(oldPath, newPath)
}

// Remove records and delegates.
func (r *RecordingStore) Remove(path string, recursive bool) error {
	r.Ops = append(r.Ops, "remove "+path)
	if err := r.fail("remove " + path); err != nil {
		return err
	}
	return r.Store.Remove(path, recursive)
}

// Exists delegates to the wrapped store.
func (r *RecordingStore) Exists(path string) (bool, error) {
	return r.Store.Exists(path)
}

// Removals returns the paths passed to Remove.
func (r *RecordingStore) Removals() []string {
	var out []string
	for _, op := range r.Ops {
		if p, ok := strings.CutPrefix(op, "remove "); ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *RecordingStore) fail(op string) error {
	if r.FailOn == nil {
		return nil
	}
	return r.FailOn[op]
}
