package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"elevhtn/internal/domain"
	"elevhtn/internal/elevator"
	"elevhtn/internal/store"
)

func TestProblem_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var problems domain.ProblemStore = store.NewProblemFileStore(home)

	p, err := elevator.Build(3, 2, []int{0, 2})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := problems.SaveProblem("lobby", p); err != nil {
		t.Fatalf("save problem: %v", err)
	}

	got, ok, err := problems.LoadProblem("lobby")
	if err != nil || !ok {
		t.Fatalf("load problem: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("mismatch after load:\n got %+v\nwant %+v", got, p)
	}

	info, err := os.Stat(filepath.Join(home, "problems", "lobby.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestProblem_Missing_NotError(t *testing.T) {
	problems := store.NewProblemFileStore(t.TempDir())
	_, ok, err := problems.LoadProblem("nobody")
	if err != nil || ok {
		t.Fatalf("missing problem: ok=%v err=%v", ok, err)
	}
	names, err := problems.ListProblems()
	if err != nil || len(names) != 0 {
		t.Fatalf("list on empty home: %v %v", names, err)
	}
}

func TestProblem_List_Sorted(t *testing.T) {
	problems := store.NewProblemFileStore(t.TempDir())
	p, err := elevator.Build(1, 0, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, n := range []domain.ProblemName{"b", "a", "c.v2"} {
		if err := problems.SaveProblem(n, p); err != nil {
			t.Fatalf("save %s: %v", n, err)
		}
	}
	names, err := problems.ListProblems()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []domain.ProblemName{"a", "b", "c.v2"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
}

func TestProblem_RejectsUnsafeNames(t *testing.T) {
	problems := store.NewProblemFileStore(t.TempDir())
	for _, n := range []domain.ProblemName{"", "..", "../escape", "a/b", "sp ace"} {
		if err := problems.SaveProblem(n, domain.Problem{}); !errors.Is(err, domain.ErrInvalidConfiguration) {
			t.Fatalf("save %q: err = %v, want invalid configuration", n, err)
		}
	}
}

func TestProblem_CorruptFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "problems")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.NewProblemFileStore(home).LoadProblem("bad"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPlan_SaveLoad_Overwrites(t *testing.T) {
	plans := store.NewPlanFileStore(t.TempDir())

	first := domain.Plan{Problem: "lobby", Fingerprint: "aa", RequestID: "r1"}
	second := domain.Plan{
		Problem:     "lobby",
		Fingerprint: "bb",
		RequestID:   "r2",
		Actions:     []domain.GroundAction{{Action: "open_door", Args: []string{"elevator"}}},
		CreatedUTC:  42,
	}
	if err := plans.SavePlan(first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := plans.SavePlan(second); err != nil {
		t.Fatalf("save second: %v", err)
	}
	got, ok, err := plans.LoadPlan("lobby")
	if err != nil || !ok {
		t.Fatalf("load plan: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Fatalf("got %+v, want %+v", got, second)
	}

	if _, ok, err := plans.LoadPlan("other"); err != nil || ok {
		t.Fatalf("missing plan: ok=%v err=%v", ok, err)
	}
}
