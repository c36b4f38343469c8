package core

import "testing"

func TestPriority_Ordering(t *testing.T) {
	if !(Debugging < Message && Message < Warning && Warning < Error && Error < None) {
		t.Error("priority ordering is broken")
	}
}

func TestPriority_String(t *testing.T) {
	cases := map[Priority]string{
		Debugging:    "DEBUG",
		Message:      "MESSAGE",
		Warning:      "WARNING",
		Error:        "ERROR",
		None:         "NONE",
		Priority(99): "UNKNOWN",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Priority(%d).String() = %q, want %q", p, got, want)
		}
	}
}

func TestPriority_TagWidth(t *testing.T) {
	for _, p := range []Priority{Debugging, Message, Warning, Error} {
		if len(p.Tag()) != 9 {
			t.Errorf("%v tag %q is not nine columns", p, p.Tag())
		}
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"debug":   Debugging,
		"DEBUG":   Debugging,
		"message": Message,
		"info":    Message,
		"warning": Warning,
		"warn":    Warning,
		"error":   Error,
		"none":    None,
		"bogus":   Message,
		"":        Message,
	}
	for s, want := range cases {
		if got := ParsePriority(s); got != want {
			t.Errorf("ParsePriority(%q) = %v, want %v", s, got, want)
		}
	}
}
