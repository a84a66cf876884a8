package decoders

import (
	"html"

	"github.com/RenTrieu/Ares/internal/types"
)

type htmlEntityDecoder struct{}

func (htmlEntityDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "HTML Entity",
		Description: "Decode HTML/XML entities (&amp;, &#39;, &#x27;, ...) in the input",
		Link:        "https://en.wikipedia.org/wiki/List_of_XML_and_HTML_character_entity_references",
		Tags:        []string{"web-encoding", "html"},
		Popularity:  0.25,
	}
}

func (h htmlEntityDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := h.Identify()
	cr := reject(d, text)

	decoded := html.UnescapeString(string(text))
	candidate := types.Text(decoded)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}
