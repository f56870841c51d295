package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(80, 0, nil); got != nil {
		t.Errorf("expected nil for empty input, got %q", got)
	}
	if got := Render(80, 0, []byte("  \n ")); got != nil {
		t.Errorf("expected nil for blank input, got %q", got)
	}
}

func TestRenderIndents(t *testing.T) {
	got := string(Render(40, 2, []byte("plain description")))
	for _, line := range strings.Split(got, "\n") {
		if line != "" && !strings.HasPrefix(line, "  ") {
			t.Errorf("line not indented: %q", line)
		}
	}
}

func TestPlainWraps(t *testing.T) {
	input := strings.Repeat("word ", 20)
	got := string(Plain(20, 0, []byte(input)))
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line exceeds wrap width: %q", line)
		}
	}
}

func TestPlainNormalizesNewlines(t *testing.T) {
	got := string(Plain(80, 0, []byte("one\r\ntwo\r\n")))
	if strings.Contains(got, "\r") {
		t.Errorf("carriage returns survived: %q", got)
	}
	if !strings.HasPrefix(got, "one") {
		t.Errorf("unexpected output: %q", got)
	}
}
