package web

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const imgStyle = "max-width:100%;display:block;margin-bottom:1em"

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// BuildGallery constructs an html web page displaying images with the given
// filenames. Filenames are escaped when the page is rendered.
func BuildGallery(title string, filenames []string) (string, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	titleNode := element(atom.Title)
	titleNode.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleNode)

	body := element(atom.Body)
	root.AppendChild(body)

	for _, f := range filenames {
		body.AppendChild(element(atom.Img,
			html.Attribute{Key: "src", Val: f},
			html.Attribute{Key: "alt", Val: f},
			html.Attribute{Key: "style", Val: imgStyle},
		))
	}

	sb := &strings.Builder{}
	err := html.Render(sb, doc)
	if err != nil {
		return "", err
	}
	sb.WriteString("\n")

	return sb.String(), nil
}
