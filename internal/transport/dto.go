package transport

import "time"

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// ListResponse extends the envelope with the pagination fields list
// endpoints carry.
type ListResponse struct {
	Success    bool  `json:"success"`
	Data       any   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
}

type CreateProductResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID uint   `json:"productId"`
}

type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userid"`
}

type ProductColorRequest struct {
	HexValue  string `json:"hex_value"`
	ColorName string `json:"color_name" validate:"required"`
}

type CreateProductRequest struct {
	Name          string                `json:"name" validate:"required"`
	Brand         string                `json:"brand"`
	Price         int64                 `json:"price" validate:"gte=0"`
	Category      string                `json:"category"`
	Description   string                `json:"description"`
	ImageLink     string                `json:"image_link"`
	Stock         int                   `json:"stock" validate:"gte=0"`
	Status        string                `json:"status" validate:"omitempty,oneof=available out_of_stock discontinued"`
	ProductColors []ProductColorRequest `json:"product_colors" validate:"dive"`
}

// UpdateProductRequest replaces every mutable column; there is no partial
// update. Colors are fixed at creation and not part of the update surface.
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Brand       string `json:"brand"`
	Price       int64  `json:"price" validate:"gte=0"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageLink   string `json:"image_link"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Status      string `json:"status" validate:"required,oneof=available out_of_stock discontinued"`
}

type CreateUserRequest struct {
	ID       string `json:"id" validate:"required,max=50"`
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=40"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender" validate:"omitempty,max=1"`
	PhoneNum string `json:"phone_num" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=40"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender" validate:"omitempty,max=1"`
	PhoneNum string `json:"phone_num" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	UserIdx     uint   `json:"user_idx"`
	IsAdmin     bool   `json:"is_admin"`
}

// ProductFilter carries the optional list predicates; nil/empty means no
// constraint. All present filters combine with AND.
type ProductFilter struct {
	Name     string
	Brand    string
	Category string
	Status   string
	MinPrice *int64
	MaxPrice *int64
}

type UserFilter struct {
	ID        string
	Name      string
	Gender    string
	IsAdmin   *bool
	IsActive  *bool
	StartDate *time.Time
	EndDate   *time.Time
}

type OrderFilter struct {
	OrderNum  string
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderSummary is one row of the order list: the order joined with the
// customer's login id.
type OrderSummary struct {
	ID         uint      `json:"id"`
	OrderNum   string    `json:"order_num"`
	UserID     string    `json:"user_id"`
	TotalPrice int64     `json:"total_price"`
	OrderDate  time.Time `json:"order_date"`
}

type OrderItemView struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	LineTotal   int64  `json:"line_total"`
}

type OrderDetail struct {
	ID         uint            `json:"id"`
	OrderNum   string          `json:"order_num"`
	OrderDate  time.Time       `json:"order_date"`
	TotalPrice int64           `json:"total_price"`
	UserName   string          `json:"user_name"`
	UserID     string          `json:"user_id"`
	PhoneNum   string          `json:"phone_num"`
	Items      []OrderItemView `json:"items"`
}

type MonthlySales struct {
	Month string `json:"month"`
	Sales int64  `json:"sales"`
}

type CategorySales struct {
	Category string `json:"category"`
	Sales    int64  `json:"sales"`
}

type BrandSales struct {
	Brand string `json:"brand"`
	Sales int64  `json:"sales"`
}
