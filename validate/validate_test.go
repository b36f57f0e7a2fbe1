package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/parse"
)

func mustParse(t *testing.T, body string) *ir.Node {
	t.Helper()
	root, err := parse.ParseString("iutf:init:main " + body)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { root.Release() })
	return root
}

type fieldErr struct {
	Field string
	Err   error
}

func summarize(err error) []fieldErr {
	var res []fieldErr
	for _, ve := range Errors(err) {
		res = append(res, fieldErr{Field: ve.Field, Err: ve.Err})
	}
	return res
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []fieldErr
	}{
		{
			name: "ok",
			in:   `{ title: "X", version: 1 }`,
		},
		{
			name: "float version",
			in:   `{ version: 1.5, title: "X", extra: [1, 'x'] }`,
		},
		{
			name: "missing title",
			in:   `{ version: 1 }`,
			want: []fieldErr{{"title", ErrMissingField}},
		},
		{
			name: "wrong type still scans for version",
			in:   `{ title: 5 }`,
			want: []fieldErr{{"title", ErrFieldType}, {"version", ErrMissingField}},
		},
		{
			name: "first mismatch wins",
			in:   `{ title: BigString[x], version: "1" }`,
			want: []fieldErr{{"title", ErrFieldType}},
		},
		{
			name: "long is not a version",
			in:   `{ title: "X", version: 1L }`,
			want: []fieldErr{{"version", ErrFieldType}},
		},
		{
			name: "nested fields do not count",
			in:   `{ meta: { title: "X", version: 1 } }`,
			want: []fieldErr{{"title", ErrMissingField}, {"version", ErrMissingField}},
		},
		{
			name: "empty",
			in:   `{}`,
			want: []fieldErr{{"title", ErrMissingField}, {"version", ErrMissingField}},
		},
	}
	opt := cmp.Comparer(func(a, b error) bool { return a == b })
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(mustParse(t, tc.in))
			if diff := cmp.Diff(tc.want, summarize(err), opt); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if (err == nil) != (tc.want == nil) {
				t.Errorf("got %v", err)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("%v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestValidateRoot(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrNilRoot) {
		t.Errorf("nil root: got %v", err)
	}
	arr := ir.NewArray()
	if err := Validate(arr); !errors.Is(err, ErrRootNotBranch) {
		t.Errorf("array root: got %v", err)
	}
}

func TestValidateBuiltTree(t *testing.T) {
	root := ir.NewBranch()
	root.Add("title", ir.FromString("built"))
	root.Add("version", ir.FromFloat(2))
	if err := Validate(root); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestValidationErrMessage(t *testing.T) {
	err := Validate(mustParse(t, `{ title: 5, version: 1 }`))
	if err == nil {
		t.Fatal("expected error")
	}
	want := `validation failed: wrong field type: "title" must be String, got Integer`
	if got := err.Error(); got != want {
		t.Errorf("got %q", got)
	}
	err = Validate(mustParse(t, `{ title: "X" }`))
	if got := err.Error(); !strings.Contains(got, `"version" (Float or Integer)`) {
		t.Errorf("got %q", got)
	}
}
