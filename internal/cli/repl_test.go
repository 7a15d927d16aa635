package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	signedIn bool

	calls    []string
	messages []string
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.signedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.signedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.signedIn = false
	return nil
}
func (f *fakeExec) Try(ctx context.Context) error {
	f.calls = append(f.calls, "try")
	return nil
}
func (f *fakeExec) History(ctx context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) Say(ctx context.Context, message string) error {
	f.calls = append(f.calls, "say")
	f.messages = append(f.messages, message)
	return nil
}

func stubPrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	stubPrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"try",
		"login",
		"help",
		"history",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"try", "login", "history", "logout"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(want) && c == want[idx] {
			idx++
		}
	}
	if idx != len(want) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, want)
	}
}

func TestRunREPL_FreeTextGoesToChat(t *testing.T) {
	stubPrintln(t)

	input := strings.NewReader("what is the weather on Mars\nquit\n")
	exec := &fakeExec{signedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.messages) != 1 || exec.messages[0] != "what is the weather on Mars" {
		t.Fatalf("chat messages mismatch: %v", exec.messages)
	}
}

func TestRunREPL_BlankLineSkipped(t *testing.T) {
	stubPrintln(t)

	input := strings.NewReader("\n   \nexit\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("expected no calls, got %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	stubPrintln(t)

	input := strings.NewReader("register\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("calls mismatch: %v", exec.calls)
	}
}
