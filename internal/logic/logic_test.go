package logic_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/idelchi/gorc/internal/logic"
)

func TestKeygenOutputFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	if err := logic.Keygen(&out); err != nil {
		t.Fatalf("Keygen: %v", err)
	}

	line := strings.TrimSuffix(out.String(), "\n")

	tokens := strings.Split(line, " ")
	if len(tokens) != 32 {
		t.Fatalf("got %d tokens, want 32", len(tokens))
	}

	pair := regexp.MustCompile(`^[0-9a-f]{2}$`)

	for _, token := range tokens {
		if !pair.MatchString(token) {
			t.Errorf("token %q is not a lowercase hex pair", token)
		}
	}
}

func TestKeygenOutputVaries(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer

	if err := logic.Keygen(&first); err != nil {
		t.Fatalf("Keygen: %v", err)
	}

	if err := logic.Keygen(&second); err != nil {
		t.Fatalf("Keygen: %v", err)
	}

	if first.String() == second.String() {
		t.Error("two generated keys are identical")
	}
}
