package model

import "time"

// Story 短时内容，contenido 存上传媒体路径
type Story struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	IDUsuario int64     `json:"id_usuario" gorm:"column:id_usuario;index:idx_historia_usuario;not null"`
	Contenido string    `json:"contenido" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Story) TableName() string { return "historias" }
