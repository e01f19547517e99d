package services

import (
	"context"
	"strings"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"
	"wisdomcircle/internal/repository"
	"wisdomcircle/internal/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	// Login проверяет пароль администратора и возвращает его идентификатор.
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	users         repository.UserRepo
	adminPassword string
}

func NewAuthService(users repository.UserRepo, adminPassword string) AuthService {
	return &authService{users: users, adminPassword: adminPassword}
}

// Login: пароль из окружения всегда авторитетен — при совпадении админ
// создаётся или его хеш чинится. Иначе сверяем с bcrypt-хешем из базы.
func (s *authService) Login(ctx context.Context, password string) (string, error) {
	log := logger.WithCtx(ctx)

	password = strings.TrimSpace(password)
	if password == "" {
		log.Warn("Попытка входа без пароля")
		return "", apperr.Validation("Password is required")
	}

	if s.adminPassword != "" && password == s.adminPassword {
		admin, err := s.users.GetAdmin(ctx)
		if err != nil {
			log.Error("Ошибка чтения админа (repo)", zap.Error(err))
			return "", err
		}

		hash, err := utils.HashPassword(s.adminPassword)
		if err != nil {
			return "", err
		}

		if admin == nil {
			admin, err = s.users.Create(ctx, &models.User{
				Username:     "admin",
				PasswordHash: hash,
				Role:         "admin",
			})
			if err != nil {
				log.Error("Ошибка создания админа (repo)", zap.Error(err))
				return "", err
			}
			log.Info("Создан администратор", zap.String("id", admin.ID.Hex()))
		} else if !utils.CheckPassword(admin.PasswordHash, s.adminPassword) {
			// Хеш в базе разошёлся с окружением — выравниваем
			if err := s.users.UpdatePassword(ctx, admin.ID, hash); err != nil {
				log.Error("Ошибка обновления пароля админа (repo)", zap.Error(err))
				return "", err
			}
		}

		log.Info("Вход администратора выполнен", zap.String("id", admin.ID.Hex()))
		return admin.ID.Hex(), nil
	}

	admin, err := s.users.GetAdmin(ctx)
	if err != nil {
		log.Error("Ошибка чтения админа (repo)", zap.Error(err))
		return "", err
	}
	if admin != nil && utils.CheckPassword(admin.PasswordHash, password) {
		log.Info("Вход администратора выполнен", zap.String("id", admin.ID.Hex()))
		return admin.ID.Hex(), nil
	}

	log.Warn("Неверный пароль администратора")
	return "", apperr.Unauthorized("Invalid password")
}
