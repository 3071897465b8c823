package wordlist

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := strings.Join([]string{
		"# a comment",
		"cat",
		"  DOG  ",
		"",
		"toolongaword",
		"a",
		"code",
	}, "\n")

	words, err := Read(context.Background(), strings.NewReader(input), 2, 5)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []string{"cat", "dog", "code"}
	if !slices.Equal(words, want) {
		t.Errorf("Read() = %v, want %v", words, want)
	}
}

func TestRead_UnboundedMaxLength(t *testing.T) {
	words, err := Read(context.Background(), strings.NewReader("extraordinarily\ncat"), 2, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []string{"extraordinarily", "cat"}
	if !slices.Equal(words, want) {
		t.Errorf("Read() = %v, want %v", words, want)
	}
}

func TestRead_RejectsNonLetters(t *testing.T) {
	if _, err := Read(context.Background(), strings.NewReader("don't"), 2, 0); err == nil {
		t.Error("Read of word with apostrophe succeeded, want error")
	}
}

func TestRead_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Read(ctx, strings.NewReader("cat"), 2, 0); err == nil {
		t.Error("Read with cancelled context succeeded, want error")
	}
}
