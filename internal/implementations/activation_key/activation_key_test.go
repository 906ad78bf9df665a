package activationkey

import (
	"errors"
	"regexp"
	"registration/internal/core/domain/activation"
	"registration/internal/core/domain/user"
	"testing"
)

var keyPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestActivationKeyGenerator(t *testing.T) {
	generator := NewGenerator()
	keys := make(map[activation.Key]struct{})
	u := user.User{ID: 1, Username: "alice"}
	for i := 0; i < 10000; i++ {
		key, err := generator.GenerateKey(u)
		if err != nil {
			t.Fatalf("could not generate key: %v", err)
		}
		if !keyPattern.MatchString(string(key)) {
			t.Fatalf("key %q does not look like a sha1 hex digest", key)
		}
		if key == activation.KeyActivated {
			t.Fatal("key must not be the activated sentinel")
		}
		if _, ok := keys[key]; ok {
			t.Fatalf("key %v already exists", key)
		}
		keys[key] = struct{}{}
	}
}

func TestActivationKeyDiffersAcrossUsers(t *testing.T) {
	generator := NewGenerator()
	alice, err := generator.GenerateKey(user.User{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	bob, err := generator.GenerateKey(user.User{ID: 2, Username: "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if alice == bob {
		t.Fatal("keys of different users must differ")
	}
}

func TestActivationKeyRandomSourceFailure(t *testing.T) {
	generator := &Generator{random: failingReader{}}
	if _, err := generator.GenerateKey(user.User{ID: 1, Username: "alice"}); err == nil {
		t.Fatal("expected an error when the random source fails")
	}
}
