package model

import "time"

// Post 内容主体，likes_count 仅经点赞接口变更，恒 >= 0
type Post struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre     string    `json:"nombre" gorm:"type:varchar(100)"`
	Contenido  string    `json:"contenido" gorm:"type:text"`
	AutorID    int64     `json:"autor_id" gorm:"column:autor_id;index:idx_post_autor"`
	ImagenURL  *string   `json:"imagen_url" gorm:"column:imagen_url;type:varchar(255)"`
	LikesCount int64     `json:"likes_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Post) TableName() string { return "posts" }
