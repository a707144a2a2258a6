package models

import (
	"time"

	"github.com/fsdevblog/shortlink/internal/shortcode"
)

// ShortLink структура модели хранения сокращенной ссылки.
// ID назначает хранилище при вставке, после этого запись не меняется.
type ShortLink struct {
	ID        int32     `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Token короткий идентификатор, под которым ссылка доступна снаружи.
func (s *ShortLink) Token() string {
	return shortcode.Encode(s.ID)
}
