package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"single run", "Widget", "widget"},
		{"two runs", "FooBar", "foo_bar"},
		{"three runs", "FooBarBaz", "foo_bar_baz"},
		{"acronym has no runs", "HTTP", ""},
		{"all lowercase has no runs", "widget", ""},
		{"digits have no runs", "1234", ""},
		{"empty string", "", ""},
		{"single uppercase letter", "X", ""},
		{"mixed acronym keeps trailing run", "XMLReader", "reader"},
		{"underscored input has no uppercase", "foo_bar", ""},
		{"runs separated by digits", "Foo2Bar", "foo_bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.token))
		})
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"splittable name", "BlockingQueue", "blocking_queue"},
		{"acronym falls back to lower", "HTTP", "http"},
		{"short lowercase falls back to itself", "ab", "ab"},
		{"already snake_case is stable", "blocking_queue", "blocking_queue"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileBase(tt.token))
		})
	}
}

// FileBase applied to its own output must be a fixed point, otherwise a
// second migration run would rename files again.
func TestFileBaseIdempotent(t *testing.T) {
	for _, token := range []string{"FooBarBaz", "Widget", "HTTP", "ab", "Foo2Bar"} {
		once := FileBase(token)
		assert.Equal(t, once, FileBase(once), "token %q", token)
	}
}
