package cli

import (
	"bytes"
	"testing"
)

func TestRootHasAllCommands(t *testing.T) {
	root := NewRoot(nil)

	want := map[string]bool{"add": false, "list": false, "search": false, "stats": false, "sync": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestSearchHasTagFlag(t *testing.T) {
	root := NewRoot(nil)
	search, _, err := root.Find([]string{"search"})
	if err != nil {
		t.Fatalf("Find(search): %v", err)
	}
	if search.Flags().Lookup("tag") == nil {
		t.Error("search is missing the --tag flag")
	}
	if search.Flags().ShorthandLookup("t") == nil {
		t.Error("search is missing the -t shorthand")
	}
}

func TestAddRequiresArguments(t *testing.T) {
	root := NewRoot(nil)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"add"})

	if err := root.Execute(); err == nil {
		t.Error("add with no arguments did not fail")
	}
}
