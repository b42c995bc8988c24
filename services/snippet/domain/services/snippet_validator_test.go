package services

import (
	"strings"
	"testing"

	"github.com/ghuser/snipbase/services/snippet/domain/models"
)

func validSnippet(t *testing.T) *models.Snippet {
	t.Helper()
	lang, err := models.NewLanguage("go")
	if err != nil {
		t.Fatalf("new language: %v", err)
	}
	s, err := models.NewSnippet("quicksort", lang, "func qs() {}", "classic divide and conquer", []string{"sorting"})
	if err != nil {
		t.Fatalf("new snippet: %v", err)
	}
	return s
}

func TestValidateSnippet(t *testing.T) {
	t.Run("accepts a valid snippet", func(t *testing.T) {
		if err := ValidateSnippet(validSnippet(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects nil snippet", func(t *testing.T) {
		if err := ValidateSnippet(nil); err == nil {
			t.Fatal("expected error for nil snippet")
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		s := validSnippet(t)
		s.Title = "   "
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for blank title")
		}
	})

	t.Run("rejects over-length title", func(t *testing.T) {
		s := validSnippet(t)
		s.Title = strings.Repeat("x", maxTitleLength+1)
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for over-length title")
		}
	})

	t.Run("accepts title at max length", func(t *testing.T) {
		s := validSnippet(t)
		s.Title = strings.Repeat("x", maxTitleLength)
		if err := ValidateSnippet(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects missing language", func(t *testing.T) {
		s := validSnippet(t)
		s.Language = ""
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for missing language")
		}
	})

	t.Run("rejects blank code", func(t *testing.T) {
		s := validSnippet(t)
		s.Code = "\n\t "
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for blank code")
		}
	})

	t.Run("rejects blank tag", func(t *testing.T) {
		s := validSnippet(t)
		s.Tags = []string{"sorting", "  "}
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for blank tag")
		}
	})

	t.Run("rejects over-length tag", func(t *testing.T) {
		s := validSnippet(t)
		s.Tags = []string{strings.Repeat("x", maxTagLength+1)}
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for over-length tag")
		}
	})

	t.Run("rejects too many tags", func(t *testing.T) {
		s := validSnippet(t)
		s.Tags = make([]string, maxTagCount+1)
		for i := range s.Tags {
			s.Tags[i] = "tag"
		}
		if err := ValidateSnippet(s); err == nil {
			t.Fatal("expected error for too many tags")
		}
	})

	t.Run("accepts empty tags", func(t *testing.T) {
		s := validSnippet(t)
		s.Tags = []string{}
		if err := ValidateSnippet(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
