package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// ParseSection converts a markdown document into a section
// The first level-1 heading is the section title; each level-2 heading opens a card
// that collects the blocks up to the next level-2 heading
func ParseSection(id string, src []byte) (Section, error) {
	root := markdown.Parser().Parse(text.NewReader(src))
	sec := Section{ID: id}

	var card *Block
	add := func(b Block) {
		if card != nil {
			card.Lines = append(card.Lines, b.Lines...)
			if card.Link == "" {
				card.Link = b.Link
			}
			return
		}
		sec.Blocks = append(sec.Blocks, b)
	}
	closeCard := func() {
		if card != nil {
			sec.Blocks = append(sec.Blocks, *card)
			card = nil
		}
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := sanitizeLine(inlineText(node, src))
			switch {
			case node.Level == 1 && sec.Title == "":
				sec.Title = title
			case node.Level == 2:
				closeCard()
				card = &Block{Kind: BlockCard, Title: title}
			default:
				add(Block{Kind: BlockHeading, Lines: []string{title}})
			}

		case *ast.Paragraph:
			add(Block{
				Kind:  BlockParagraph,
				Lines: []string{sanitizeLine(inlineText(node, src))},
				Link:  firstLink(node),
			})

		case *ast.List:
			var items []string
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				items = append(items, "• "+sanitizeLine(inlineText(item, src)))
			}
			add(Block{Kind: BlockList, Lines: items, Link: firstLink(node)})

		case *ast.FencedCodeBlock:
			add(Block{Kind: BlockCode, Lines: codeLines(node, src)})

		case *ast.CodeBlock:
			add(Block{Kind: BlockCode, Lines: codeLines(node, src)})
		}
	}
	closeCard()

	if sec.Title == "" {
		sec.Title = titleFromID(id)
	}
	return sec, nil
}

// inlineText concatenates the text under n; soft breaks become spaces
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(t.Value)
			case *ast.AutoLink:
				b.Write(t.Label(src))
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// firstLink returns the destination of the first link under n
func firstLink(n ast.Node) string {
	var dest string
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if l, ok := c.(*ast.Link); ok {
			dest = string(l.Destination)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return dest
}

func codeLines(n ast.Node, src []byte) []string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\r\n")
		out = append(out, strings.ReplaceAll(line, "\t", "    "))
	}
	return out
}

func titleFromID(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
