package extract

import (
	"reflect"
	"testing"

	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/taxonomy"
)

func testCatalog() *taxonomy.Catalog {
	return taxonomy.NewCatalog([]*models.Skill{
		{Name: "Python"},
		{Name: "C++"},
		{Name: "C#"},
		{Name: "Node.js"},
		{Name: "Machine Learning"},
		{Name: "SQL"},
	})
}

func TestSkills(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"plain mentions",
			"Experienced in Python and SQL databases.",
			[]string{"Python", "SQL"},
		},
		{
			"punctuated skill tokens survive",
			"5 years of C++ and C#, some Node.js on the side.",
			[]string{"C++", "C#", "Node.js"},
		},
		{
			"sentence-final node.js",
			"Built services with node.js.",
			[]string{"Node.js"},
		},
		{
			"multi-word skill",
			"Focus areas: machine learning pipelines.",
			[]string{"Machine Learning"},
		},
		{
			"case insensitive",
			"PYTHON, python, Python",
			[]string{"Python"},
		},
		{
			"no false substring hits",
			"I use pythonic idioms.", // token is "pythonic", not "python"
			nil,
		},
		{
			"empty text",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.text, catalog)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Skills(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPlain(t *testing.T) {
	e := NewExtractor()
	text, err := e.ExtractBytes([]byte("hello resume"), ".txt")
	if err != nil || text != "hello resume" {
		t.Errorf("ExtractBytes = %q, %v", text, err)
	}

	// Invalid UTF-8 is replaced, not rejected.
	text, err = e.ExtractBytes([]byte{0x68, 0x69, 0xff}, ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if text == "" || text[:2] != "hi" {
		t.Errorf("invalid UTF-8 handling: %q", text)
	}
}

func TestExtractUnknownExtensionFallsBackToPlain(t *testing.T) {
	e := NewExtractor()
	text, err := e.ExtractBytes([]byte("some text"), ".resume")
	if err != nil || text != "some text" {
		t.Errorf("ExtractBytes = %q, %v", text, err)
	}
}
