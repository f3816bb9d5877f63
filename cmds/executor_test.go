package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var length int
	executor.Define("-max-length", Func(func(n int) {
		length = n
	}))
	var reset bool
	executor.Define("-reset", Func(func() {
		reset = true
	}))

	if err := executor.Execute([]string{"-reset", "-max-length", "32"}); err != nil {
		t.Fatal(err)
	}
	if !reset {
		t.Fatal()
	}
	if length != 32 {
		t.Fatalf("got %v", length)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-max-length", "abc"})
	if err == nil || !strings.Contains(err.Error(), "convert abc to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-max-length"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var listed bool
	var limit int
	executor.Define("history", Sub(map[string]*Command{
		"list": Func(func() {
			listed = true
		}),
		"limit": Func(func(n int) {
			limit = n
		}),
	}))

	if err := executor.Execute([]string{"history", "list", "limit", "5"}); err != nil {
		t.Fatal(err)
	}
	if !listed {
		t.Fatal()
	}
	if limit != 5 {
		t.Fatalf("got %v", limit)
	}

	// subs are not visible before their parent
	if err := executor.Execute([]string{"list"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("bar", Func(func() {}).Alias("foo"))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "bar" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestFuncError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	if err := executor.Execute([]string{"fail"}); err != errFoo {
		t.Fatalf("got %v", err)
	}
}

type fooError struct{}

func (fooError) Error() string { return "foo" }

var errFoo error = fooError{}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("history", Sub(map[string]*Command{
		"list": Func(func() {}).Desc("LIST"),
	}).Desc("HISTORY"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "history\tHISTORY") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "  list\tLIST") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "-h, help, -help, --help\tprint this usage") {
		t.Fatalf("got %s", out)
	}
}
