package explain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jkorab/camel/runtime"
)

type fakeController struct {
	endpoints    []runtime.EndpointInfo
	explanations map[string]string
	endpointsErr error
	explainErr   error
}

func (f *fakeController) Endpoints(name string) ([]runtime.EndpointInfo, error) {
	if f.endpointsErr != nil {
		return nil, f.endpointsErr
	}
	return f.endpoints, nil
}

func (f *fakeController) ExplainEndpoint(name, uri string, allOptions bool) (string, error) {
	if f.explainErr != nil {
		return "", f.explainErr
	}
	doc, ok := f.explanations[uri]
	if !ok {
		return "", fmt.Errorf("no explanation for %s", uri)
	}
	return doc, nil
}

func emptyExplanation(uris ...string) map[string]string {
	out := make(map[string]string, len(uris))
	for _, uri := range uris {
		out[uri] = `{"uri":"` + uri + `","options":[]}`
	}
	return out
}

func TestRunNoEndpointsNoOutput(t *testing.T) {
	var buf bytes.Buffer
	err := Run(&fakeController{}, &buf, "camel", false, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRunSchemeFilterIsPrefixMatch(t *testing.T) {
	ctrl := &fakeController{
		endpoints: []runtime.EndpointInfo{
			{ID: "1", URI: "a:foo"},
			{ID: "2", URI: "b:bar"},
			{ID: "3", URI: "ab:baz"},
		},
		explanations: emptyExplanation("a:foo", "b:bar", "ab:baz"),
	}

	var buf bytes.Buffer
	if err := Run(ctrl, &buf, "camel", false, []string{"a"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	// prefix match, not scheme-exact: "a" retains both a:foo and ab:baz
	if !strings.Contains(out, "a:foo") {
		t.Error("expected a:foo to be retained")
	}
	if !strings.Contains(out, "ab:baz") {
		t.Error("expected ab:baz to be retained by the prefix match")
	}
	if strings.Contains(out, "b:bar") {
		t.Error("expected b:bar to be filtered out")
	}
}

func TestRunRendersOptionBlocks(t *testing.T) {
	ctrl := &fakeController{
		endpoints: []runtime.EndpointInfo{{ID: "1", URI: "timer:foo?delay=1000"}},
		explanations: map[string]string{
			"timer:foo?delay=1000": `{"uri":"timer:foo?delay=1000","options":[` +
				`{"name":"delay","value":"1000","description":"Delay in millis"},` +
				`{"name":"timer.name","value":"foo"}]}`,
		},
	}

	var buf bytes.Buffer
	if err := Run(ctrl, &buf, "camel", false, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Option:\t\tdelay\n") {
		t.Errorf("missing delay option block:\n%s", out)
	}
	if !strings.Contains(out, "Value:\t\t1000\n") {
		t.Errorf("missing value line for delay:\n%s", out)
	}
	if !strings.Contains(out, "Value:\t\tfoo\n") {
		t.Errorf("missing value line for timer.name:\n%s", out)
	}
	if got := strings.Count(out, "Description:"); got != 1 {
		t.Errorf("expected exactly one description line, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "Description:\tDelay in millis\n") {
		t.Errorf("missing description for delay:\n%s", out)
	}
}

func TestRunHeaderIsUnderlinedToItsLength(t *testing.T) {
	uri := "timer:foo"
	ctrl := &fakeController{
		endpoints:    []runtime.EndpointInfo{{ID: "1", URI: uri}},
		explanations: emptyExplanation(uri),
	}

	var buf bytes.Buffer
	if err := Run(ctrl, &buf, "camel", false, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected header and underline, got %q", buf.String())
	}
	header, underline := lines[0], lines[1]
	if header != "Uri:            timer:foo" {
		t.Errorf("unexpected header: %q", header)
	}
	if underline != strings.Repeat("-", utf8.RuneCountInString(header)) {
		t.Errorf("underline does not match header length: %q", underline)
	}
}

func TestRunSanitizesHeaderURI(t *testing.T) {
	uri := "http:myhost?username=scott&password=tiger"
	ctrl := &fakeController{
		endpoints:    []runtime.EndpointInfo{{ID: "1", URI: uri}},
		explanations: emptyExplanation(uri),
	}

	var buf bytes.Buffer
	if err := Run(ctrl, &buf, "camel", false, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "tiger") {
		t.Errorf("password leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "password=xxxxxx") {
		t.Errorf("expected masked password in header:\n%s", out)
	}
}

func TestRunSeparatesEndpointsWithBlankLine(t *testing.T) {
	ctrl := &fakeController{
		endpoints: []runtime.EndpointInfo{
			{ID: "1", URI: "timer:a"},
			{ID: "2", URI: "timer:b"},
		},
		explanations: emptyExplanation("timer:a", "timer:b"),
	}

	var buf bytes.Buffer
	if err := Run(ctrl, &buf, "camel", false, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(blocks) != 2 {
		t.Errorf("expected 2 endpoint blocks, got %d:\n%q", len(blocks), buf.String())
	}
}

func TestRunPropagatesFailures(t *testing.T) {
	fetchErr := errors.New("fetch failed")
	var buf bytes.Buffer
	if err := Run(&fakeController{endpointsErr: fetchErr}, &buf, "camel", false, nil); !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}

	explainErr := errors.New("explain failed")
	ctrl := &fakeController{
		endpoints:  []runtime.EndpointInfo{{ID: "1", URI: "timer:a"}},
		explainErr: explainErr,
	}
	if err := Run(ctrl, &buf, "camel", false, nil); !errors.Is(err, explainErr) {
		t.Fatalf("expected explain error to propagate, got %v", err)
	}
}

func TestParseOptions(t *testing.T) {
	options, err := ParseOptions([]byte(`{"uri":"x:y","options":[` +
		`{"name":"a","value":"1","description":"first"},` +
		`{"name":"b"}]}`))
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].Value == nil || *options[0].Value != "1" {
		t.Errorf("unexpected value: %+v", options[0].Value)
	}
	if options[1].Value != nil || options[1].Description != nil {
		t.Errorf("expected nil value and description for b: %+v", options[1])
	}

	if _, err := ParseOptions([]byte("not json")); err == nil {
		t.Error("expected error for malformed json")
	}
}
