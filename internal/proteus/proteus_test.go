package proteus

import (
	"strings"
	"testing"

	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/internal/xmldoc"
)

const plantInformation = `<PlantInformation Date="2024-05-02" Time="10:30:00" ` +
	`OriginatingSystem="TestSystem" OriginatingSystemVendor="TestVendor" ` +
	`OriginatingSystemVersion="1.0"/>`

// loadDoc wraps body in a plant model with valid metadata and loads it.
func loadDoc(t *testing.T, body string) *Result {
	t.Helper()
	return loadDocWithOptions(t, body, Options{})
}

func loadDocWithOptions(t *testing.T, body string, opts Options) *Result {
	t.Helper()
	doc := `<PlantModel>` + plantInformation + body + `</PlantModel>`
	res, err := Load(strings.NewReader(doc), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return res
}

func testContext(t *testing.T) (Context, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	return NewContext("PlantModel", NewObjectRegistry(), rec, Options{}), rec
}

func parseElement(t *testing.T, doc string) *xmldoc.Element {
	t.Helper()
	el, err := xmldoc.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return el
}

func countSeverity(list derrors.DiagnosticList, s derrors.Severity) int {
	return len(list.At(s))
}

// messagesAt returns the messages of all diagnostics at the severity.
func messagesAt(list derrors.DiagnosticList, s derrors.Severity) []string {
	var out []string
	for _, d := range list.At(s) {
		out = append(out, d.Message)
	}
	return out
}

func containsMessage(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
