package catalogsvc

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "store_commerce/internal/api/base/service"
	catalogmodels "store_commerce/internal/api/catalog/models"
	"store_commerce/internal/api/events"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

// CategoryService xử lý nghiệp vụ danh mục.
// Danh mục được đồng bộ từ nhãn category của sản phẩm: mỗi nhãn xuất hiện
// trên bất kỳ sản phẩm nào đều có một bản ghi Category sau khi đồng bộ.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
	productService *ProductService
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, common.ErrNotFound
	}

	productService, err := NewProductService()
	if err != nil {
		return nil, err
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
		productService:       productService,
	}, nil
}

// List danh sách danh mục, mặc định chỉ lấy danh mục đang hoạt động
func (s *CategoryService) List(ctx context.Context, includeInactive bool) ([]catalogmodels.Category, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// CategoryListItem bản rút gọn của danh mục dùng cho dropdown/menu
type CategoryListItem struct {
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

// ListLight danh sách rút gọn (name, slug) của các danh mục đang hoạt động
func (s *CategoryService) ListLight(ctx context.Context) ([]CategoryListItem, error) {
	categories, err := s.List(ctx, false)
	if err != nil {
		return nil, err
	}

	items := make([]CategoryListItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryListItem{Name: c.Name, Slug: c.Slug})
	}
	return items, nil
}

// GetBySlug tìm danh mục theo slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (catalogmodels.Category, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}

// SyncResult kết quả một lần đồng bộ danh mục
type SyncResult struct {
	Labels  int `json:"labels"`  // Tổng số nhãn trên sản phẩm đang hoạt động
	Created int `json:"created"` // Số danh mục được tạo mới
}

// Sync đối chiếu danh mục với nhãn category của sản phẩm đang hoạt động.
// Nhãn chưa có danh mục sẽ được tạo với slug sinh từ tên. Không xóa danh mục thừa.
func (s *CategoryService) Sync(ctx context.Context) (*SyncResult, error) {
	labels, err := s.productService.Distinct(ctx, "category", bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, raw := range labels {
		name, ok := raw.(string)
		if !ok || name == "" {
			continue
		}
		result.Labels++

		created, err := s.ensureCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created++
		}
	}
	return result, nil
}

// ensureCategory tạo danh mục cho nhãn nếu chưa tồn tại, trả về true khi tạo mới
func (s *CategoryService) ensureCategory(ctx context.Context, name string) (bool, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = s.InsertOne(ctx, catalogmodels.Category{
		Name:     name,
		Slug:     utility.Slugify(name),
		IsActive: true,
	})
	if err != nil {
		// Hai sản phẩm cùng nhãn insert đồng thời, một bên thua unique index
		if errors.Is(err, common.ErrMongoDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RegisterProductSyncHandler đăng ký handler trên event bus: mỗi khi sản phẩm
// được thêm/sửa, nhãn category của nó được đảm bảo có danh mục tương ứng.
// Gọi một lần khi khởi động server, sau khi collections đã được đăng ký.
func RegisterProductSyncHandler() error {
	categoryService, err := NewCategoryService()
	if err != nil {
		return err
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Products {
			return
		}
		if e.Operation == events.OpDelete {
			return
		}

		product, ok := e.Document.(catalogmodels.Product)
		if !ok || product.Category == "" {
			return
		}

		// Event chạy trong goroutine riêng, không dùng ctx của request đã xong
		syncCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := categoryService.ensureCategory(syncCtx, product.Category); err != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"category": product.Category,
				"error":    err.Error(),
			}).Error("Đồng bộ danh mục từ sản phẩm thất bại")
		}
	})
	return nil
}
