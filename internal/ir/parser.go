package ir

// DialectFace is the subset of internal/dialect.Dialect the parser needs.
// Declared here (rather than importing internal/dialect) to keep the IR
// package free of a dependency on dialect selection; internal/dialect's
// concrete types satisfy it structurally.
type DialectFace interface {
	DialectHint() DialectHint
	ClassifyTrivia(raw string) TriviaKind
	ParseParts(raw string) (parts Parts, ok bool)
}

// physicalLine is one line of split input before it becomes a Line node.
type physicalLine struct {
	raw        string
	ending     LineEnding
	num        int
	startByte  int
	endByte    int
	indent     int
	mixedWS    bool
}

// splitLines splits input into physical lines, preserving each line's
// terminator separately, and computing byte offsets (content only) and
// 1-based line numbers.
func splitLines(input string) []physicalLine {
	var lines []physicalLine
	start := 0
	lineNum := 1
	i := 0
	n := len(input)
	for i < n {
		j := i
		// A lone '\r' (not followed by '\n') is content, not a terminator,
		// so it survives the round trip unchanged.
		for j < n && input[j] != '\n' && (input[j] != '\r' || j+1 >= n || input[j+1] != '\n') {
			j++
		}
		content := input[i:j]
		ending := EndingNone
		end := j
		if j < n {
			if input[j] == '\r' {
				ending = EndingCRLF
				j += 2
			} else {
				ending = EndingLF
				j++
			}
		}
		indent, mixed := measureIndent(content)
		lines = append(lines, physicalLine{
			raw:       content,
			ending:    ending,
			num:       lineNum,
			startByte: start,
			endByte:   end,
			indent:    indent,
			mixedWS:   mixed,
		})
		lineNum++
		start = j
		i = j
	}
	// Trailing newline with nothing after it produces no extra physical
	// line; an input ending mid-line (no terminator) is captured above
	// with ending == EndingNone because j == n.
	return lines
}

// measureIndent computes the indent width (space=1, tab=4) of the leading
// whitespace run and reports whether both spaces and tabs appeared in it.
func measureIndent(raw string) (width int, mixed bool) {
	sawSpace, sawTab := false, false
	for _, r := range raw {
		switch r {
		case ' ':
			width++
			sawSpace = true
		case '\t':
			width += 4
			sawTab = true
		default:
			return width, sawSpace && sawTab
		}
	}
	return width, sawSpace && sawTab
}

// stackFrame tracks one open Block parent while walking lines in order.
type stackFrame struct {
	indent  int
	blockID NodeID
}

// Parse runs the indentation-driven parser (spec C1 §4.1) over input using
// the given dialect face, producing a Document. The parser never rejects
// input: malformed structure is preserved verbatim with ParseFindings.
func Parse(input string, dia DialectFace, sourceName string) *Document {
	doc := NewDocument()
	doc.Meta.SourceName = sourceName
	doc.Meta.Dialect = dia.DialectHint()
	doc.Meta.ByteLength = len(input)

	physical := splitLines(input)
	doc.Meta.LineCount = len(physical)

	var stack []stackFrame

	for idx, pl := range physical {
		trivia := dia.ClassifyTrivia(pl.raw)

		if pl.mixedWS {
			doc.Meta.Findings = append(doc.Meta.Findings, ParseFinding{
				Code:    FindingMixedLeadingWhitespace,
				Message: "line mixes space and tab leading whitespace",
				Span:    Span{Line: pl.num, Start: pl.startByte, End: pl.endByte},
			})
		}

		var parts *Parts
		if trivia == TriviaContent {
			if p, ok := dia.ParseParts(pl.raw); ok {
				parts = &p
			}
		}

		line := Line{
			Raw:    pl.raw,
			Ending: pl.ending,
			Span:   Span{Line: pl.num, Start: pl.startByte, End: pl.endByte},
			Parts:  parts,
			Trivia: trivia,
		}

		if trivia == TriviaBlank {
			id := doc.addLine(line)
			attachToParent(doc, &stack, id)
			continue
		}

		// Pop all open parents whose indent is >= this line's indent. Any
		// non-Blank line closes a block on dedent, Comment included --
		// only Blank is exempt.
		for len(stack) > 0 && stack[len(stack)-1].indent >= pl.indent {
			stack = stack[:len(stack)-1]
		}

		if trivia == TriviaComment {
			id := doc.addLine(line)
			attachToParent(doc, &stack, id)
			continue
		}

		if trivia == TriviaContent && pl.indent > 0 && len(stack) == 0 {
			doc.Meta.Findings = append(doc.Meta.Findings, ParseFinding{
				Code:    FindingOrphanIndentation,
				Message: "content line is indented with no open parent",
				Span:    line.Span,
			})
		}

		opens := trivia == TriviaContent && lineOpensBlock(physical, idx, pl.indent, dia)
		if opens {
			blockID := doc.addBlock(Block{Header: line})
			attachToParent(doc, &stack, blockID)
			stack = append(stack, stackFrame{indent: pl.indent, blockID: blockID})
			continue
		}

		id := doc.addLine(line)
		attachToParent(doc, &stack, id)
	}

	return doc
}

// lineOpensBlock reports whether the Content line at idx opens a block:
// the next following Content line (skipping Blank/Comment) has a strictly
// greater indent.
func lineOpensBlock(physical []physicalLine, idx int, indent int, dia DialectFace) bool {
	for j := idx + 1; j < len(physical); j++ {
		next := physical[j]
		if dia.ClassifyTrivia(next.raw) != TriviaContent {
			continue
		}
		return next.indent > indent
	}
	return false
}

// attachToParent appends childID under the current top-of-stack parent, or
// to the document's roots when the stack is empty.
func attachToParent(doc *Document, stack *[]stackFrame, childID NodeID) {
	if len(*stack) == 0 {
		doc.appendChild(0, false, childID)
		return
	}
	top := (*stack)[len(*stack)-1]
	doc.appendChild(top.blockID, true, childID)
}
