package sqlbuilder

import (
	"errors"
	"testing"
)

func TestQuery_BindNumbersAfterAppend(t *testing.T) {
	q := New("SELECT 1 WHERE true")
	if ph := q.Bind("a"); ph != "$1" {
		t.Fatalf("expected $1, got %s", ph)
	}
	if ph := q.Bind("b"); ph != "$2" {
		t.Fatalf("expected $2, got %s", ph)
	}
	if q.Len() != 2 {
		t.Fatalf("expected 2 args, got %d", q.Len())
	}
}

func TestQuery_Clause(t *testing.T) {
	q := New("SELECT * FROM properties WHERE true")
	if err := q.Clause(" AND owner_id = ?", int64(7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Clause(" AND cost_per_night BETWEEN ? AND ?", int64(50), int64(150)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q.Write(" GROUP BY id")

	want := "SELECT * FROM properties WHERE true AND owner_id = $1 AND cost_per_night BETWEEN $2 AND $3 GROUP BY id"
	if q.SQL() != want {
		t.Fatalf("unexpected sql:\n got %s\nwant %s", q.SQL(), want)
	}

	args := q.Args()
	if len(args) != 3 || args[0] != int64(7) || args[1] != int64(50) || args[2] != int64(150) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestQuery_ClauseMarkerMismatch(t *testing.T) {
	q := New("SELECT 1")
	if err := q.Clause(" AND a = ? AND b = ?", 1); !errors.Is(err, ErrMarkerCount) {
		t.Fatalf("expected ErrMarkerCount, got %v", err)
	}
	if q.Len() != 0 || q.SQL() != "SELECT 1" {
		t.Fatalf("rejected clause must not modify the query: %q %v", q.SQL(), q.Args())
	}
}

func TestQuery_ArgsIsCopy(t *testing.T) {
	q := New("")
	q.Bind(1)
	args := q.Args()
	args[0] = 99
	if q.Args()[0] != 1 {
		t.Fatalf("expected internal args untouched")
	}
}

func TestContains(t *testing.T) {
	cases := map[string]string{
		"francisco": "%francisco%",
		"50%_off":   `%50\%\_off%`,
		`a\b`:       `%a\\b%`,
	}
	for in, want := range cases {
		if got := Contains(in); got != want {
			t.Fatalf("Contains(%q) = %q, want %q", in, got, want)
		}
	}
}
