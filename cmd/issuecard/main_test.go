package main

import (
	"reflect"
	"testing"
)

func TestRewriteSeedFileArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"issuecard"},
			want: []string{"issuecard"},
		},
		{
			name: "seed file first token",
			in:   []string{"issuecard", "card.toml"},
			want: []string{"issuecard", "--seed", "card.toml"},
		},
		{
			name: "seed file after value flag",
			in:   []string{"issuecard", "--title", "card.yaml", "card.json"},
			want: []string{"issuecard", "--title", "card.yaml", "--seed", "card.json"},
		},
		{
			name: "seed file after equals flag",
			in:   []string{"issuecard", "--width=40", "card.yml"},
			want: []string{"issuecard", "--width=40", "--seed", "card.yml"},
		},
		{
			name: "seed file after bool flag",
			in:   []string{"issuecard", "--read-only", "card.toml"},
			want: []string{"issuecard", "--read-only", "--seed", "card.toml"},
		},
		{
			name: "seed file after subcommand",
			in:   []string{"issuecard", "render", "card.toml"},
			want: []string{"issuecard", "render", "--seed", "card.toml"},
		},
		{
			name: "double dash stops rewriting",
			in:   []string{"issuecard", "--", "card.toml"},
			want: []string{"issuecard", "--", "card.toml"},
		},
		{
			name: "unknown positional not rewritten",
			in:   []string{"issuecard", "wat"},
			want: []string{"issuecard", "wat"},
		},
		{
			name: "subcommand with flags only",
			in:   []string{"issuecard", "show", "--title", "x"},
			want: []string{"issuecard", "show", "--title", "x"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteSeedFileArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteSeedFileArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
