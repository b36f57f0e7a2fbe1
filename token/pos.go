package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the newlines of a document so that byte offsets can be
// mapped to 1-based line and column numbers.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 1-based line and column of byte offset off. Columns
// count bytes.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

// Line returns the text of 1-based line ln without its newline.
func (p *PosDoc) Line(ln int) []byte {
	if ln < 1 || ln > len(p.n)+1 {
		return nil
	}
	start := 0
	if ln > 1 {
		start = p.n[ln-2] + 1
	}
	end := len(p.d)
	if ln <= len(p.n) {
		end = p.n[ln-1]
	}
	return p.d[start:end]
}

// Offset returns the byte offset of the 1-based line and column, clamped to
// the document.
func (p *PosDoc) Offset(line, col int) int {
	if line < 1 {
		return 0
	}
	start := 0
	if line > 1 {
		if line-2 >= len(p.n) {
			return len(p.d)
		}
		start = p.n[line-2] + 1
	}
	end := len(p.d)
	if line-1 < len(p.n) {
		end = p.n[line-1]
	}
	return min(start+max(col-1, 0), end)
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, l, c)
}
