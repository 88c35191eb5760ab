package model

import "time"

// Comment 评论；nombre 为自由文本，不关联账号
type Comment struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID     int64     `json:"post_id" gorm:"column:post_id;index:idx_comentario_post;not null"`
	Nombre     string    `json:"nombre" gorm:"type:varchar(100);not null"`
	Comentario string    `json:"comentario" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Comment) TableName() string { return "comentarios" }
