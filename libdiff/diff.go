package libdiff

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/ir"
)

// Canonical returns the IUTF text Diff compares for node.
func Canonical(node *ir.Node) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.IUTFFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Diff returns the differences between the canonical encodings of from and
// to, line oriented and cleaned up for reading.
func Diff(from, to *ir.Node) ([]diffpatch.Diff, error) {
	a, err := Canonical(from)
	if err != nil {
		return nil, err
	}
	b, err := Canonical(to)
	if err != nil {
		return nil, err
	}
	return DiffText(a, b), nil
}

func DiffText(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return dmp.DiffCleanupSemantic(diffs)
}

// Equal reports whether diffs contain no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Format renders line diffs with a "-", "+" or " " prefix on each line.
// When colored is set deletions are red and insertions green.
func Format(diffs []diffpatch.Diff, colored bool) string {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		lines := strings.SplitAfter(d.Text, "\n")
		for _, ln := range lines {
			if ln == "" {
				continue
			}
			if !strings.HasSuffix(ln, "\n") {
				ln += "\n"
			}
			switch d.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(del.Sprint("-" + ln))
			case diffpatch.DiffInsert:
				buf.WriteString(ins.Sprint("+" + ln))
			default:
				buf.WriteString(" " + ln)
			}
		}
	}
	return buf.String()
}
