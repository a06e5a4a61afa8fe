package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionPreview(t *testing.T) {
	t.Run("ShortDescriptionUnchanged", func(t *testing.T) {
		p := &Play{Description: "A short story."}
		assert.Equal(t, "A short story.", p.DescriptionPreview())
	})

	t.Run("ExactLimitUnchanged", func(t *testing.T) {
		p := &Play{Description: strings.Repeat("a", 100)}
		assert.Equal(t, p.Description, p.DescriptionPreview())
	})

	t.Run("LongDescriptionTruncated", func(t *testing.T) {
		p := &Play{Description: strings.Repeat("a", 150)}
		preview := p.DescriptionPreview()
		assert.Equal(t, strings.Repeat("a", 100)+"...", preview)
	})

	// 截斷以 rune 為單位，多位元組字元不可被切壞
	t.Run("MultibyteSafe", func(t *testing.T) {
		p := &Play{Description: strings.Repeat("劇", 120)}
		preview := p.DescriptionPreview()
		assert.Equal(t, strings.Repeat("劇", 100)+"...", preview)
	})
}

func TestPlaySummary(t *testing.T) {
	p := &Play{
		ID:    1,
		Title: "Hamlet",
		Actors: []*Actor{
			{ID: 1, FirstName: "John", LastName: "Doe"},
		},
		Genres: []*Genre{
			{ID: 1, Name: "Tragedy"},
		},
	}

	summary := p.Summary()
	assert.Equal(t, []string{"John Doe"}, summary.Actors)
	assert.Equal(t, []string{"Tragedy"}, summary.Genres)
}

func TestPlayDetailEmptyRelations(t *testing.T) {
	p := &Play{ID: 1, Title: "Hamlet"}

	detail := p.Detail()
	assert.NotNil(t, detail.Actors)
	assert.NotNil(t, detail.Genres)
	assert.Empty(t, detail.Actors)
	assert.Empty(t, detail.Genres)
}
