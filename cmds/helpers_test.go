package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	n := Var[int]("TestVar.n")
	s := Var[string]("TestVar.s")
	GlobalExecutor.MustExecute([]string{
		"TestVar.n", "21",
		"TestVar.s", "foo",
	})
	if *n != 21 {
		t.Fatalf("got %v", *n)
	}
	if *s != "foo" {
		t.Fatalf("got %v", *s)
	}
	GlobalExecutor.MustExecute([]string{"TestVar.n."})
	if *n != 0 {
		t.Fatalf("got %v", *n)
	}
}

func TestSwitch(t *testing.T) {
	v := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{"TestSwitch"})
	if !*v {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{"!TestSwitch"})
	if *v {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "1",
		"TestCollect", "+",
	})
	if str := fmt.Sprintf("%v", *list); str != "[1 +]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Path string
	v := Var[Path]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{"TestTypedVar", "/tmp/history.db"})
	if *v != "/tmp/history.db" {
		t.Fatalf("got %v", *v)
	}
}
