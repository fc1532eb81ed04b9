package cmd

import (
	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
	"github.com/msto63/seqkit/foundation/utils/seqx"
	"github.com/msto63/seqkit/foundation/utils/slicex"
	"github.com/msto63/seqkit/internal/textio"
)

// runner is the width-independent view of a session used by the commands
type runner interface {
	length() int
	slice(spec seqx.SliceSpec) string
	at(i int) (uint32, error)
	search(op, needle string, w seqx.Window) (int, error)
	affix(suffix bool, candidates []string, w seqx.Window) (bool, error)
	split(sep string, maxsplit int, right bool) ([]string, error)
	partition(sep string, right bool) ([]string, error)
	strip(chars, side string) (string, error)
	lines(keepends bool) []string
	translate(from, to, deletes string) (string, error)
}

type codec[U seqx.CodeUnit] interface {
	units(s string) ([]U, error)
	text(units []U) string
}

type narrowCodec struct {
	enc textio.Encoding
}

func (c narrowCodec) units(s string) ([]byte, error) { return c.enc.Narrow(s) }
func (c narrowCodec) text(units []byte) string      { return c.enc.NarrowText(units) }

type wideCodec struct{}

func (wideCodec) units(s string) ([]uint16, error) { return textio.Wide(s), nil }
func (wideCodec) text(units []uint16) string      { return textio.WideText(units) }

type session[U seqx.CodeUnit] struct {
	codec      codec[U]
	hay        []U
	classifier seqx.Classifier
}

func newSession[U seqx.CodeUnit](hay string, c codec[U], classifier seqx.Classifier) (*session[U], error) {
	units, err := c.units(hay)
	if err != nil {
		return nil, err
	}
	return &session[U]{codec: c, hay: units, classifier: classifier}, nil
}

func (s *session[U]) texts(parts [][]U) []string {
	return slicex.Map(parts, s.codec.text)
}

func (s *session[U]) needle(text string) (seqx.Needle[U], error) {
	units, err := s.codec.units(text)
	if err != nil {
		return seqx.Needle[U]{}, err
	}
	return seqx.Seq(units), nil
}

func (s *session[U]) length() int { return len(s.hay) }

func (s *session[U]) slice(spec seqx.SliceSpec) string {
	return s.codec.text(seqx.Apply(s.hay, spec))
}

func (s *session[U]) at(i int) (uint32, error) {
	u, err := seqx.At(s.hay, i)
	return uint32(u), err
}

func (s *session[U]) search(op, needle string, w seqx.Window) (int, error) {
	n, err := s.needle(needle)
	if err != nil {
		return 0, err
	}

	switch op {
	case "find":
		return seqx.Find(s.hay, n, w), nil
	case "rfind":
		return seqx.RFind(s.hay, n, w), nil
	case "index":
		return seqx.Index(s.hay, n, w)
	case "rindex":
		return seqx.RIndex(s.hay, n, w)
	case "count":
		return seqx.Count(s.hay, n, w), nil
	default:
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "search", op, "find, rfind, index, rindex or count")
	}
}

func (s *session[U]) affix(suffix bool, candidates []string, w seqx.Window) (bool, error) {
	needles := make([]seqx.Needle[U], len(candidates))
	for i, c := range candidates {
		n, err := s.needle(c)
		if err != nil {
			return false, err
		}
		needles[i] = n
	}
	if suffix {
		return seqx.EndsWithAny(s.hay, needles, w), nil
	}
	return seqx.StartsWithAny(s.hay, needles, w), nil
}

func (s *session[U]) split(sep string, maxsplit int, right bool) ([]string, error) {
	if sep == "" {
		if right {
			return s.texts(seqx.RSplitWith(s.hay, maxsplit, s.classifier)), nil
		}
		return s.texts(seqx.SplitWith(s.hay, maxsplit, s.classifier)), nil
	}

	n, err := s.needle(sep)
	if err != nil {
		return nil, err
	}
	if right {
		return s.texts(seqx.RSplitOn(s.hay, n, maxsplit)), nil
	}
	return s.texts(seqx.SplitOn(s.hay, n, maxsplit)), nil
}

func (s *session[U]) partition(sep string, right bool) ([]string, error) {
	n, err := s.needle(sep)
	if err != nil {
		return nil, err
	}
	var before, match, after []U
	if right {
		before, match, after = seqx.RPartition(s.hay, n)
	} else {
		before, match, after = seqx.Partition(s.hay, n)
	}
	return s.texts([][]U{before, match, after}), nil
}

func (s *session[U]) strip(chars, side string) (string, error) {
	var stripped []U
	if chars == "" {
		switch side {
		case "both":
			stripped = seqx.StripWith(s.hay, s.classifier)
		case "left":
			stripped = seqx.LStripWith(s.hay, s.classifier)
		case "right":
			stripped = seqx.RStripWith(s.hay, s.classifier)
		default:
			return "", invalidSide(side)
		}
		return s.codec.text(stripped), nil
	}

	n, err := s.needle(chars)
	if err != nil {
		return "", err
	}
	switch side {
	case "both":
		stripped = seqx.Strip(s.hay, n)
	case "left":
		stripped = seqx.LStrip(s.hay, n)
	case "right":
		stripped = seqx.RStrip(s.hay, n)
	default:
		return "", invalidSide(side)
	}
	return s.codec.text(stripped), nil
}

func invalidSide(side string) error {
	return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "strip", side, "both, left or right")
}

func (s *session[U]) lines(keepends bool) []string {
	return s.texts(seqx.SplitLines(s.hay, keepends))
}

func (s *session[U]) translate(from, to, deletes string) (string, error) {
	fromUnits, err := s.codec.units(from)
	if err != nil {
		return "", err
	}
	toUnits, err := s.codec.units(to)
	if err != nil {
		return "", err
	}
	deleteUnits, err := s.codec.units(deletes)
	if err != nil {
		return "", err
	}

	table, err := seqx.MakeTable(fromUnits, toUnits, deleteUnits...)
	if err != nil {
		return "", err
	}
	return s.codec.text(seqx.Translate(s.hay, table)), nil
}
