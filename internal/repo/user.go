package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

func userFilters(f transport.UserFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.ID != "" {
			q = q.Where("id LIKE ?", "%"+f.ID+"%")
		}
		if f.Name != "" {
			q = q.Where("name LIKE ?", "%"+f.Name+"%")
		}
		if f.Gender != "" {
			q = q.Where("gender = ?", f.Gender)
		}
		if f.IsAdmin != nil {
			q = q.Where("is_admin = ?", *f.IsAdmin)
		}
		if f.IsActive != nil {
			q = q.Where("is_active = ?", *f.IsActive)
		}
		if f.StartDate != nil {
			q = q.Where("regist_date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			q = q.Where("regist_date <= ?", *f.EndDate)
		}
		return q
	}
}

func (r *GormRepo) ListUsers(ctx context.Context, f transport.UserFilter, offset, limit int) (int64, []models.User, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Scopes(userFilters(f)).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.User, 0, limit)
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Scopes(userFilters(f)).
		Order("idx ASC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetUser(ctx context.Context, idx uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, "idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", loginID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser is a single-row insert but still runs inside the transaction
// helper, matching the create path of every other entity.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (uint, error) {
	err := r.runInTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return 0, err
	}
	return user.Idx, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, idx uint, req transport.UpdateUserRequest) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("idx = ?", idx).Updates(map[string]any{
		"name":        req.Name,
		"email":       req.Email,
		"password":    req.Password,
		"gender":      req.Gender,
		"phone_num":   req.PhoneNum,
		"address":     req.Address,
		"modify_date": time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeactivateUser flips is_active off and nothing else; the row stays
// queryable through every read path.
func (r *GormRepo) DeactivateUser(ctx context.Context, idx uint) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("idx = ?", idx).UpdateColumn("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
