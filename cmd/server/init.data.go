package main

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "store_commerce/internal/api/auth/models"
	authsvc "store_commerce/internal/api/auth/service"
	catalogsvc "store_commerce/internal/api/catalog/service"
	storesvc "store_commerce/internal/api/store/service"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi server khởi động
func InitDefaultData() {
	log := logger.GetAppLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Đăng ký handler tự đồng bộ danh mục khi sản phẩm thay đổi
	if err := catalogsvc.RegisterProductSyncHandler(); err != nil {
		log.Fatalf("Failed to register category sync handler: %v", err)
	}
	log.Info("Registered category sync handler")

	// 2. Tạo tài khoản quản trị mặc định nếu được cấu hình và chưa tồn tại
	if err := seedAdminUser(ctx); err != nil {
		log.Warnf("Failed to seed admin user: %v", err)
	}

	// 3. Đảm bảo document cấu hình cửa hàng tồn tại
	configService, err := storesvc.NewStoreConfigService()
	if err != nil {
		log.Fatalf("Failed to initialize store config service: %v", err)
	}
	if _, err := configService.GetOrCreate(ctx); err != nil {
		log.Warnf("Failed to seed store config: %v", err)
	} else {
		log.Info("Store config ready")
	}
}

// seedAdminUser tạo tài khoản quản trị từ ADMIN_SEED_EMAIL/ADMIN_SEED_PASSWORD.
// Bỏ qua nếu thiếu config hoặc email đã tồn tại.
func seedAdminUser(ctx context.Context) error {
	log := logger.GetAppLogger()

	email := global.ServerConfig.AdminSeedEmail
	password := global.ServerConfig.AdminSeedPassword
	if email == "" || password == "" {
		log.Info("ADMIN_SEED_EMAIL/ADMIN_SEED_PASSWORD not set, skipping admin seed")
		return nil
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}

	_, err = userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err == nil {
		log.Infof("Admin user %s already exists", email)
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	hash, err := utility.HashPassword(password)
	if err != nil {
		return err
	}

	admin := authmodels.User{
		Email:    email,
		Password: hash,
		IsAdmin:  true,
		IsActive: true,
	}
	if _, err := userService.InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Infof("Admin user %s created", email)
	return nil
}
