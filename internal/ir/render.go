package ir

import "strings"

// Render reproduces the original input bytes from a Document: for each
// node in depth-first, document order, raw+terminator of the Line/header,
// then children recursively, then raw+terminator of the footer if present.
func Render(doc *Document) string {
	var sb strings.Builder
	for _, id := range doc.Roots() {
		renderNode(doc, id, &sb)
	}
	return sb.String()
}

func renderNode(doc *Document, id NodeID, sb *strings.Builder) {
	node, ok := doc.Node(id)
	if !ok {
		return
	}
	switch node.Kind {
	case KindLine:
		renderLine(*node.Line, sb)
	case KindBlock:
		renderLine(node.Block.Header, sb)
		for _, childID := range node.Block.Children {
			renderNode(doc, childID, sb)
		}
		if node.Block.Footer != nil {
			renderLine(*node.Block.Footer, sb)
		}
	}
}

func renderLine(l Line, sb *strings.Builder) {
	sb.WriteString(l.Raw)
	sb.WriteString(string(l.Ending))
}
