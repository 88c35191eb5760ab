package model

import "time"

// User 账号（外部预置，无注册接口）
type User struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre     string    `json:"nombre" gorm:"type:varchar(100);not null"`
	Apellido   string    `json:"apellido" gorm:"type:varchar(100)"`
	Correo     string    `json:"correo" gorm:"type:varchar(255);uniqueIndex;not null"`
	Clave      string    `json:"clave" gorm:"type:varchar(255);not null"`
	FotoPerfil *string   `json:"foto_perfil" gorm:"type:varchar(255)"`
	ImgPortada *string   `json:"img_portada" gorm:"type:varchar(255)"`
	CreatedAt  time.Time `json:"created_at"`
}

func (User) TableName() string { return "usuarios" }
