package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/revelaction/relex/extract"
	"github.com/revelaction/relex/freq"
	"github.com/revelaction/relex/storage"
)

func TestRowsBigram(t *testing.T) {
	tb := freq.New[extract.Bigram]()
	tb.Inc(extract.Bigram{Adj: "big", Noun: "dog"})
	tb.Inc(extract.Bigram{Adj: "old", Noun: "cat"})
	tb.Inc(extract.Bigram{Adj: "big", Noun: "dog"})

	want := []storage.Row{
		{Fields: []string{"big", "dog"}, Count: 2},
		{Fields: []string{"old", "cat"}, Count: 1},
	}
	if got := Rows(tb); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTSVTriples(t *testing.T) {
	tb := freq.New[extract.Triple]()
	tb.Inc(extract.Triple{Subject: "cat", Verb: "chase", Object: extract.SomeObject("mouse")})
	tb.Inc(extract.Triple{Subject: "dog", Verb: "sleep", Object: extract.NoObject})

	var buf bytes.Buffer
	if err := NewTSVRenderer(&buf).Render(Rows(tb)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "cat\tchase\tmouse\t1\ndog\tsleep\t[NONE]\t1\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestTSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTSVRenderer(&buf).Render(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestReadTSV(t *testing.T) {
	rows, err := ReadTSV(strings.NewReader("big\tdog\t2\n\"odd\"\"one\"\tcat\t1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []storage.Row{
		{Fields: []string{"big", "dog"}, Count: 2},
		{Fields: []string{`odd"one`, "cat"}, Count: 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %v, got %v", want, rows)
	}
}

func TestReadTSVErrors(t *testing.T) {
	for _, in := range []string{"lonely\n", "big\tdog\tmany\n"} {
		if _, err := ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
