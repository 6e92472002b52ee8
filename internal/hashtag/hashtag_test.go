package hashtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no tags", "hello world", nil},
		{"single tag", "studying for #CS101 tonight", []string{"CS101"}},
		{"case preserved and duplicates kept", "hello #CS101 world #cs101", []string{"CS101", "cs101"}},
		{"punctuation ends a tag", "see #golang, #postgres.", []string{"golang", "postgres"}},
		{"underscore and digits are word characters", "#study_group_2025 meets friday", []string{"study_group_2025"}},
		{"bare hash ignored", "just a # sign", nil},
		{"adjacent tags", "#one#two", []string{"one", "two"}},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cs101", Normalize("CS101"))
	assert.Equal(t, "cs101", Normalize("cs101"))
}
