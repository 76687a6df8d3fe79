package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genericFace adapts a minimal generic dialect for parser tests without
// importing internal/dialect (which imports internal/ir).
type genericFace struct{}

func (genericFace) DialectHint() DialectHint { return DialectGeneric }

func (genericFace) ClassifyTrivia(raw string) TriviaKind {
	trimmed := trimSpace(raw)
	if trimmed == "" {
		return TriviaBlank
	}
	switch trimmed[0] {
	case '#', '!':
		return TriviaComment
	default:
		if len(trimmed) >= 2 && trimmed[:2] == "//" {
			return TriviaComment
		}
		return TriviaContent
	}
}

func (genericFace) ParseParts(raw string) (Parts, bool) {
	fields := fieldsOf(raw)
	if len(fields) == 0 {
		return Parts{}, false
	}
	return Parts{Head: fields[0], Args: fields[1:]}, true
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func fieldsOf(s string) []string {
	var fields []string
	cur := ""
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			if cur != "" {
				fields = append(fields, cur)
				cur = ""
			}
			continue
		}
		cur += string(s[i])
	}
	if cur != "" {
		fields = append(fields, cur)
	}
	return fields
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"interface Ethernet1\n  description uplink\n  mtu 9000\n",
		"interface Ethernet1\r\n  description uplink\r\n",
		"! comment\ninterface Ethernet1\nno description",
		"",
		"\n\n\n",
		"  orphan indented\ninterface Ethernet1\n",
		"line1\r\nline2\nline3",
	}

	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			doc := Parse(in, genericFace{}, "test")
			assert.Equal(t, in, Render(doc))
		})
	}
}

func TestParse_NestedBlocks(t *testing.T) {
	t.Parallel()
	in := "interface Ethernet1\n  description uplink\n  mtu 9000\nrouter bgp 65000\n  neighbor 10.0.0.1 remote-as 65001\n"
	doc := Parse(in, genericFace{}, "test")

	require.Len(t, doc.Roots(), 2)

	first, ok := doc.Node(doc.Roots()[0])
	require.True(t, ok)
	require.Equal(t, KindBlock, first.Kind)
	assert.Equal(t, "interface Ethernet1", first.Block.Header.Raw)
	require.Len(t, first.Block.Children, 2)

	second, ok := doc.Node(doc.Roots()[1])
	require.True(t, ok)
	require.Equal(t, KindBlock, second.Kind)
	assert.Equal(t, "router bgp 65000", second.Block.Header.Raw)
	require.Len(t, second.Block.Children, 1)
}

func TestParse_OrphanIndentationFinding(t *testing.T) {
	t.Parallel()
	in := "  orphan\ncontent\n"
	doc := Parse(in, genericFace{}, "test")
	require.NotEmpty(t, doc.Meta.Findings)
	assert.Equal(t, FindingOrphanIndentation, doc.Meta.Findings[0].Code)
}

func TestParse_MixedLeadingWhitespaceFinding(t *testing.T) {
	t.Parallel()
	in := "interface Ethernet1\n \t description mixed\n"
	doc := Parse(in, genericFace{}, "test")
	require.NotEmpty(t, doc.Meta.Findings)
	assert.Equal(t, FindingMixedLeadingWhitespace, doc.Meta.Findings[0].Code)
}

func TestParse_CommentClosesOpenBlockOnDedent(t *testing.T) {
	t.Parallel()
	in := "interface Eth1\n  description foo\n! c\n  description bar\n"
	doc := Parse(in, genericFace{}, "test")

	require.Len(t, doc.Roots(), 3)

	block, ok := doc.Node(doc.Roots()[0])
	require.True(t, ok)
	require.Equal(t, KindBlock, block.Kind)
	require.Len(t, block.Block.Children, 1, "comment at indent 0 must close the block, not nest inside it")

	comment, ok := doc.Node(doc.Roots()[1])
	require.True(t, ok)
	assert.Equal(t, TriviaComment, comment.Line.Trivia)

	orphan, ok := doc.Node(doc.Roots()[2])
	require.True(t, ok)
	assert.Equal(t, "  description bar", orphan.Line.Raw)

	require.NotEmpty(t, doc.Meta.Findings)
	assert.Equal(t, FindingOrphanIndentation, doc.Meta.Findings[0].Code)
}
