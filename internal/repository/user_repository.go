package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/internal/model"
)

type UserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	// GetByID 返回 0 或 1 行的切片，保持数组响应形态
	GetByID(ctx context.Context, id int64) ([]*model.User, error)
	FindByCredentials(ctx context.Context, correo, clave string) (*model.User, error)
	UpdateFotoPerfil(ctx context.Context, id int64, path string) (*model.User, error)
	UpdateImgPortada(ctx context.Context, id int64, path string) (*model.User, error)
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).Find(&res).Error
	return res, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&res).Error
	return res, err
}

// FindByCredentials 凭据逐字比对（外部预置明文，见数据模型约束）
func (r *userRepository) FindByCredentials(ctx context.Context, correo, clave string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("correo = ? AND clave = ?", correo, clave).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateFotoPerfil(ctx context.Context, id int64, path string) (*model.User, error) {
	return r.updateColumn(ctx, id, "foto_perfil", path)
}

func (r *userRepository) UpdateImgPortada(ctx context.Context, id int64, path string) (*model.User, error) {
	return r.updateColumn(ctx, id, "img_portada", path)
}

func (r *userRepository) updateColumn(ctx context.Context, id int64, column, path string) (*model.User, error) {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update(column, path)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUsuarioNoEncontrado
	}
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
