package repository

import "errors"

var (
	// ErrUsuarioNoEncontrado 按 id 更新账号时无匹配行
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	// ErrCredenciales 登录查询无匹配行
	ErrCredenciales = errors.New("credenciales incorrectas")
	// ErrPostNoEncontrado 引用的 post 不存在
	ErrPostNoEncontrado = errors.New("post no encontrado")
	// ErrSinLikes 计数已为 0（或 post 不存在，二者同样视为无可删）
	ErrSinLikes = errors.New("no hay likes para eliminar")
)
