package model

import (
	"github.com/google/uuid"
)

const descriptionPreviewLen = 100

type Play struct {
	ID          int       `json:"id" db:"id"`
	PlayID      uuid.UUID `json:"play_id" db:"play_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`

	Actors []*Actor `json:"actors,omitempty" db:"-"`
	Genres []*Genre `json:"genres,omitempty" db:"-"`
}

// DescriptionPreview 列表用的簡介，超過長度截斷
func (p *Play) DescriptionPreview() string {
	runes := []rune(p.Description)
	if len(runes) <= descriptionPreviewLen {
		return p.Description
	}
	return string(runes[:descriptionPreviewLen]) + "..."
}

type UpdatePlayParams struct {
	Title       *string
	Description *string
	ActorIDs    []int
	GenreIDs    []int
}

// PlaySummary 列表投影：演員與類型以名稱呈現
type PlaySummary struct {
	ID          int       `json:"id"`
	PlayID      uuid.UUID `json:"play_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Actors      []string  `json:"actors"`
	Genres      []string  `json:"genres"`
}

// PlayDetail 詳情投影：完整巢狀物件
type PlayDetail struct {
	ID          int       `json:"id"`
	PlayID      uuid.UUID `json:"play_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Actors      []*Actor  `json:"actors"`
	Genres      []*Genre  `json:"genres"`
}

func (p *Play) Summary() *PlaySummary {
	actors := make([]string, 0, len(p.Actors))
	for _, a := range p.Actors {
		actors = append(actors, a.FullName())
	}
	genres := make([]string, 0, len(p.Genres))
	for _, g := range p.Genres {
		genres = append(genres, g.Name)
	}
	return &PlaySummary{
		ID:          p.ID,
		PlayID:      p.PlayID,
		Title:       p.Title,
		Description: p.DescriptionPreview(),
		Actors:      actors,
		Genres:      genres,
	}
}

func (p *Play) Detail() *PlayDetail {
	actors := p.Actors
	if actors == nil {
		actors = make([]*Actor, 0)
	}
	genres := p.Genres
	if genres == nil {
		genres = make([]*Genre, 0)
	}
	return &PlayDetail{
		ID:          p.ID,
		PlayID:      p.PlayID,
		Title:       p.Title,
		Description: p.Description,
		Actors:      actors,
		Genres:      genres,
	}
}
