// Package uploadhdl xử lý upload ảnh lên đĩa cục bộ.
package uploadhdl

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
)

// UploadHandler xử lý route upload ảnh
type UploadHandler struct{}

// NewUploadHandler tạo mới UploadHandler
func NewUploadHandler() (*UploadHandler, error) {
	return &UploadHandler{}, nil
}

// randomFilename sinh tên file ngẫu nhiên giữ nguyên phần mở rộng
func randomFilename(original string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(original))
	return hex.EncodeToString(buf) + ext, nil
}

// HandleUpload nhận một file ảnh multipart (field "image"), lưu vào thư mục upload
// và trả về URL công khai. Thư mục chưa cấu hình thì trả về URL placeholder kèm cảnh báo.
// @Router /upload [post]
func (h *UploadHandler) HandleUpload(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		cfg := global.ServerConfig

		file, err := c.FormFile("image")
		if err != nil {
			basehdl.Respond(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file ảnh trong field 'image'",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if file.Size > cfg.UploadMaxSize {
			basehdl.Respond(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("File vượt quá kích thước tối đa %d bytes", cfg.UploadMaxSize),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			basehdl.Respond(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Chỉ chấp nhận file ảnh",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Chưa cấu hình nơi lưu: trả về placeholder để frontend vẫn chạy được
		if cfg.UploadDir == "" {
			logger.GetAppLogger().Warn("UPLOAD_DIR chưa được cấu hình, trả về URL placeholder")
			basehdl.Respond(c, fiber.Map{
				"url":         "https://placehold.co/600x400",
				"placeholder": true,
			}, nil)
			return nil
		}

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo thư mục upload", common.StatusInternalServerError, err))
			return nil
		}

		filename, err := randomFilename(file.Filename)
		if err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh tên file", common.StatusInternalServerError, err))
			return nil
		}

		if err := c.SaveFile(file, filepath.Join(cfg.UploadDir, filename)); err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể lưu file", common.StatusInternalServerError, err))
			return nil
		}

		logger.LogAction("image_upload", c, map[string]interface{}{
			"filename": filename,
			"size":     file.Size,
		})
		basehdl.Respond(c, fiber.Map{
			"url": strings.TrimRight(cfg.UploadBaseURL, "/") + "/" + filename,
		}, nil)
		return nil
	})
}
