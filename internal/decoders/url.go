package decoders

import (
	"net/url"

	"github.com/RenTrieu/Ares/internal/types"
)

type urlDecoder struct{}

func (urlDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "URL",
		Description: "URL percent-decode the input",
		Link:        "https://en.wikipedia.org/wiki/Percent-encoding",
		Tags:        []string{"web-encoding", "url"},
		Popularity:  0.4,
	}
}

func (u urlDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := u.Identify()
	cr := reject(d, text)

	decoded, err := url.QueryUnescape(string(text))
	if err != nil {
		return cr
	}
	candidate := types.Text(decoded)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}
