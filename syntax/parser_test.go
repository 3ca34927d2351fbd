package syntax_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/lcfg/syntax"
	"github.com/0xalexb/lcfg/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readExample(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "example.conf"))
	require.NoError(t, err)

	return data
}

func TestParse_ExampleConfiguration(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(readExample(t))
	require.NoError(t, err)

	expected := []syntax.Entry{
		{Key: "string-value", Value: []byte("foo")},
		{Key: "list_value.0", Value: []byte("a")},
		{Key: "list_value.1", Value: []byte("b")},
		{Key: "list_value.2", Value: []byte("c")},
		{Key: "map-value.foo", Value: []byte("bar")},
		{Key: "map-value.bar", Value: []byte("foo")},
		{Key: "binary_string", Value: []byte("\x00\xff\r\n\x00\x00\x4a")},
		{Key: "winpath", Value: []byte(`c:\windows\`)},
		{Key: "nested-list.0.0.0.0", Value: []byte("deep nesting")},
		{Key: "a.d.0", Value: []byte("d")},
		{Key: "a.d.1.0", Value: []byte("e")},
		{Key: "a.d.1.1", Value: []byte("r")},
		{Key: "a.d.2", Value: []byte("my index is 2")},
	}

	assert.Equal(t, expected, doc.Entries())
}

func TestParse_BuildsTree(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(readExample(t))
	require.NoError(t, err)

	root, err := tree.Build(doc)
	require.NoError(t, err)

	binary, access := root.GetString("binary_string")
	require.Equal(t, tree.FoundOK, access)
	assert.Equal(t, 7, binary.Len())

	_, access = root.GetList("a.d.1")
	assert.Equal(t, tree.FoundOK, access)

	_, access = root.GetMap("map-value")
	assert.Equal(t, tree.FoundOK, access)

	_, access = root.GetList("nested-list.0.0.0")
	assert.Equal(t, tree.FoundOK, access)
}

func TestParse_Forms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty document", input: "", expected: nil},
		{name: "only comments", input: "# nothing\n/* here */", expected: nil},
		{name: "map without equals", input: `m { k = "v" }`, expected: []string{"m.k=v"}},
		{name: "list without equals", input: `l [ "x" ]`, expected: []string{"l.0=x"}},
		{name: "commas between map entries", input: `m = { a = "1", b = "2", }`, expected: []string{"m.a=1", "m.b=2"}},
		{name: "trailing comma in list", input: `l = ["x", "y",]`, expected: []string{"l.0=x", "l.1=y"}},
		{name: "empty containers", input: `m = {} l = []`, expected: nil},
		{name: "list of maps", input: `l = [{ n = "a" }, { n = "b" }]`, expected: []string{"l.0.n=a", "l.1.n=b"}},
		{name: "numeric keys", input: `m = { 0 = "x" 1 = "y" }`, expected: []string{"m.0=x", "m.1=y"}},
		{name: "duplicate keys are kept", input: `k = "1" k = "2"`, expected: []string{"k=1", "k=2"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc, err := syntax.Parse([]byte(testCase.input))
			require.NoError(t, err)

			var got []string
			for _, entry := range doc.Entries() {
				got = append(got, entry.Key+"="+string(entry.Value))
			}

			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "missing value", input: `key =`, contains: "expected value, found end of input"},
		{name: "missing equals", input: `key "v"`, contains: `expected '=' after key "key"`},
		{name: "string as key", input: `"key" = "v"`, contains: "expected key, found string"},
		{name: "unterminated map", input: `m = { a = "1"`, contains: `unterminated map "m"`},
		{name: "unterminated list", input: `l = ["a",`, contains: `unterminated list "l"`},
		{name: "missing comma in list", input: `l = ["a" "b"]`, contains: "expected ',', found string"},
		{name: "stray closing brace", input: `}`, contains: "expected key, found '}'"},
		{name: "scanner error", input: `k = "\q"`, contains: "unknown escape sequence"},
		{name: "too deep", input: "k = " + strings.Repeat("[", syntax.MaxDepth+1), contains: "nesting deeper than"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc, err := syntax.Parse([]byte(testCase.input))

			require.Error(t, err)
			assert.Nil(t, doc)
			require.ErrorIs(t, err, syntax.ErrSyntax)
			assert.Contains(t, err.Error(), testCase.contains)
		})
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	doc, err := syntax.ParseReader(strings.NewReader(`k = "v"`))
	require.NoError(t, err)
	assert.Len(t, doc.Entries(), 1)
}

func TestDocument_AcceptStopsOnError(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse([]byte(`a = "1" b = "2" c = "3"`))
	require.NoError(t, err)

	errStop := errors.New("stop")

	var visited []string

	err = doc.Accept(func(key string, _ []byte) error {
		visited = append(visited, key)
		if key == "b" {
			return errStop
		}

		return nil
	})

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, []string{"a", "b"}, visited)
}
