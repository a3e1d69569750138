package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/jkorab/camel/camelerr"
)

func TestAsEndpointURI(t *testing.T) {
	cat := Default()

	opts := NewOptions()
	opts.Set("timerName", "foo")
	opts.Set("period", "5000")
	opts.Set("delay", "100")

	uri, err := cat.AsEndpointURI("timer", opts)
	if err != nil {
		t.Fatalf("AsEndpointURI: %v", err)
	}
	if uri != "timer:foo?period=5000&delay=100" {
		t.Errorf("unexpected uri: %q", uri)
	}
}

func TestAsEndpointURIEscapesValues(t *testing.T) {
	cat := Default()

	opts := NewOptions()
	opts.Set("directoryName", "inbox")
	opts.Set("fileName", "a b&c")

	uri, err := cat.AsEndpointURI("file", opts)
	if err != nil {
		t.Fatalf("AsEndpointURI: %v", err)
	}
	if uri != "file:inbox?fileName=a+b%26c" {
		t.Errorf("unexpected uri: %q", uri)
	}
}

func TestAsEndpointURIUnknownScheme(t *testing.T) {
	cat := Default()

	_, err := cat.AsEndpointURI("nope", NewOptions())
	var unknown *camelerr.UnknownSchemeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownSchemeError, got %v", err)
	}
}

func TestAsEndpointURIMissingRequiredPath(t *testing.T) {
	cat := Default()

	opts := NewOptions()
	opts.Set("period", "5000")

	_, err := cat.AsEndpointURI("timer", opts)
	var syntax *camelerr.URISyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("expected URISyntaxError, got %v", err)
	}
	if !strings.Contains(err.Error(), "timerName") {
		t.Errorf("error should name the missing option: %v", err)
	}
}

func TestAsEndpointURIUnencodableValue(t *testing.T) {
	cat := Default()

	opts := NewOptions()
	opts.Set("timerName", "foo")
	opts.Set("period", "50\n00")

	_, err := cat.AsEndpointURI("timer", opts)
	var syntax *camelerr.URISyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("expected URISyntaxError, got %v", err)
	}
}

func TestEndpointProperties(t *testing.T) {
	cat := Default()

	opts, err := cat.EndpointProperties("timer:foo?period=5000&delay=100")
	if err != nil {
		t.Fatalf("EndpointProperties: %v", err)
	}
	want := map[string]string{"timerName": "foo", "period": "5000", "delay": "100"}
	if opts.Len() != len(want) {
		t.Fatalf("expected %d options, got %d (%v)", len(want), opts.Len(), opts.Keys())
	}
	for k, v := range want {
		if got, _ := opts.Get(k); got != v {
			t.Errorf("expected %s=%s, got %q", k, v, got)
		}
	}
	// path property comes first
	if opts.Keys()[0] != "timerName" {
		t.Errorf("expected timerName first, got %v", opts.Keys())
	}
}

func TestEndpointPropertiesDoubleSlashForm(t *testing.T) {
	cat := Default()

	opts, err := cat.EndpointProperties("timer://foo")
	if err != nil {
		t.Fatalf("EndpointProperties: %v", err)
	}
	if v, _ := opts.Get("timerName"); v != "foo" {
		t.Errorf("expected timerName=foo, got %q", v)
	}
}

func TestSplitURI(t *testing.T) {
	scheme, remaining, rawQuery, err := SplitURI("timer:foo/bar?period=5000")
	if err != nil {
		t.Fatalf("SplitURI: %v", err)
	}
	if scheme != "timer" || remaining != "foo/bar" || rawQuery != "period=5000" {
		t.Errorf("unexpected parts: %q %q %q", scheme, remaining, rawQuery)
	}

	if _, _, _, err := SplitURI("no-scheme-separator"); err == nil {
		t.Error("expected error for uri without scheme separator")
	}
}

func TestParseQueryPreservesOrder(t *testing.T) {
	opts, err := ParseQuery("x:y", "b=2&a=1&c=3")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	keys := opts.Keys()
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("unexpected key order: %v", keys)
	}
}

func TestParseQueryMalformedEscape(t *testing.T) {
	_, err := ParseQuery("x:y", "a=%zz")
	var syntax *camelerr.URISyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("expected URISyntaxError, got %v", err)
	}
}

func TestSanitizeURI(t *testing.T) {
	uri := SanitizeURI("http:myhost?username=scott&password=tiger&connectTimeout=500")
	if uri != "http:myhost?username=scott&password=xxxxxx&connectTimeout=500" {
		t.Errorf("unexpected sanitized uri: %q", uri)
	}

	// case-insensitive key match
	uri = SanitizeURI("mq:q?accessKey=abc&secretKey=def")
	if uri != "mq:q?accessKey=xxxxxx&secretKey=xxxxxx" {
		t.Errorf("unexpected sanitized uri: %q", uri)
	}

	// no query: untouched
	if got := SanitizeURI("timer:foo"); got != "timer:foo" {
		t.Errorf("unexpected sanitized uri: %q", got)
	}
}
