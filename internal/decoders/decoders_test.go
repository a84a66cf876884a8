package decoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenTrieu/Ares/internal/types"
)

// acceptAll is a no-op checker used by decoder tests that only care
// about the candidates a decoder produces, not how the checker pipeline
// classifies them.
type acceptAll struct{}

func (acceptAll) Identify() (string, string)            { return "acceptAll", "accepts everything" }
func (acceptAll) Classify(types.Text) types.CheckResult { return types.CheckResult{IsIdentified: true} }

func TestBase64Decoder_RoundTrip(t *testing.T) {
	d := base64Decoder{}
	cr := d.Attempt(types.Text("aGVsbG8gd29ybGQ="), acceptAll{})
	require.True(t, cr.Success)
	require.Len(t, cr.UnencryptedText, 1)
	assert.Equal(t, types.Text("hello world"), cr.UnencryptedText[0])
}

func TestBase64Decoder_RejectsGarbage(t *testing.T) {
	d := base64Decoder{}
	cr := d.Attempt(types.Text("not valid base64!!"), acceptAll{})
	assert.False(t, cr.Success)
	assert.Empty(t, cr.UnencryptedText)
}

func TestBase32Decoder_RoundTrip(t *testing.T) {
	d := base32Decoder{}
	cr := d.Attempt(types.Text("NBSWY3DPEB3W64TMMQ======"), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("hello world"), cr.UnencryptedText[0])
}

func TestBase16Decoder_RoundTrip(t *testing.T) {
	d := base16Decoder{}
	cr := d.Attempt(types.Text("68656c6c6f"), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("hello"), cr.UnencryptedText[0])
}

func TestCaesarDecoder_MultiOutput(t *testing.T) {
	d := caesarDecoder{}
	cr := d.Attempt(types.Text("Khoor, Zruog!"), acceptAll{})
	require.True(t, cr.Success)

	found := false
	for _, c := range cr.UnencryptedText {
		if c == types.Text("Hello, World!") {
			found = true
		}
	}
	assert.True(t, found, "expected one of the 25 shifts to recover the plaintext")
}

func TestAtbashDecoder(t *testing.T) {
	d := atbashDecoder{}
	cr := d.Attempt(types.Text("Svool"), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("Hello"), cr.UnencryptedText[0])
}

func TestMorseDecoder(t *testing.T) {
	d := morseDecoder{}
	cr := d.Attempt(types.Text("... --- ..."), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("sos"), cr.UnencryptedText[0])
}

func TestURLDecoder(t *testing.T) {
	d := urlDecoder{}
	cr := d.Attempt(types.Text("hello%20world"), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("hello world"), cr.UnencryptedText[0])
}

func TestHTMLEntityDecoder(t *testing.T) {
	d := htmlEntityDecoder{}
	cr := d.Attempt(types.Text("A&amp;B"), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("A&B"), cr.UnencryptedText[0])
}

func TestBrainfuckDecoder_HelloWorld(t *testing.T) {
	d := brainfuckDecoder{}
	program := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	cr := d.Attempt(types.Text(program), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("Hello World!\n"), cr.UnencryptedText[0])
}

func TestBrainfuckDecoder_RejectsShortProgram(t *testing.T) {
	d := brainfuckDecoder{}
	cr := d.Attempt(types.Text("+."), acceptAll{})
	assert.False(t, cr.Success)
}

func TestBase58Decoder_RoundTrip(t *testing.T) {
	d := base58Decoder{}
	// Canonical Bitcoin-alphabet base58 test vector for "Hello World!".
	cr := d.Attempt(types.Text("2NEpo7TZRRrLZSi2U"), acceptAll{})
	require.True(t, cr.Success)
	assert.Equal(t, types.Text("Hello World!"), cr.UnencryptedText[0])
}

func TestCheckStringSuccess_RejectsIdentityAndEmpty(t *testing.T) {
	assert.False(t, checkStringSuccess("", "anything"))
	assert.False(t, checkStringSuccess("same", "same"))
	assert.True(t, checkStringSuccess("different", "same"))
}

func TestRegistry_OrdersByPopularityDescending(t *testing.T) {
	r := NewRegistry()
	all := r.All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Identify().Popularity, all[i].Identify().Popularity)
	}
}
