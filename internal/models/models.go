package models

import "time"

// Product statuses accepted by the catalog.
const (
	ProductStatusAvailable    = "available"
	ProductStatusOutOfStock   = "out_of_stock"
	ProductStatusDiscontinued = "discontinued"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string         `gorm:"size:255;not null"         json:"name"`
	Brand       string         `gorm:"size:255"                  json:"brand"`
	Price       int64          `gorm:"not null"                  json:"price"`
	Category    string         `gorm:"size:255"                  json:"category"`
	Description string         `gorm:"type:text"                 json:"description"`
	ImageLink   string         `gorm:"type:text"                 json:"image_link"`
	Stock       int            `gorm:"default:5"                 json:"stock"`
	Status      string         `gorm:"size:20;default:available" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Colors      []ProductColor `gorm:"foreignKey:ProductID"      json:"product_colors,omitempty"`
}

// ProductColor rows exist only as part of their product; neither the row id
// nor the parent key is exposed to clients.
type ProductColor struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID uint   `gorm:"index;not null"           json:"-"`
	HexValue  string `gorm:"size:7"                   json:"hex_value"`
	ColorName string `gorm:"size:50"                  json:"color_name"`
}

// User is keyed by the numeric idx; ID is the external login id.
// is_active=false marks a deactivated account, the row is never removed.
type User struct {
	Idx        uint      `gorm:"primaryKey;autoIncrement"          json:"idx"`
	ID         string    `gorm:"size:50;not null"                  json:"id"`
	Name       string    `gorm:"size:50;not null"                  json:"name"`
	Email      string    `gorm:"size:40;not null"                  json:"email"`
	Password   string    `gorm:"size:255;not null"                 json:"password"`
	Gender     string    `gorm:"size:1"                            json:"gender"`
	PhoneNum   string    `gorm:"size:30"                           json:"phone_num"`
	Address    string    `gorm:"size:255"                          json:"address"`
	IsAdmin    bool      `gorm:"default:false"                     json:"is_admin"`
	IsActive   bool      `gorm:"not null;default:true"             json:"is_active"`
	RegistDate time.Time `gorm:"column:regist_date;autoCreateTime" json:"regist_date"`
	ModifyDate time.Time `gorm:"column:modify_date;autoUpdateTime" json:"modify_date"`
}

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNum   string      `gorm:"size:30;uniqueIndex"      json:"order_num"`
	UserIdx    uint        `gorm:"index;not null"           json:"user_idx"`
	TotalPrice int64       `gorm:"not null"                 json:"total_price"`
	OrderDate  time.Time   `gorm:"column:order_date"        json:"order_date"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"       json:"items,omitempty"`
}

type OrderItem struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint   `gorm:"index;not null"           json:"order_id"`
	ProductID   uint   `gorm:"not null"                 json:"product_id"`
	ProductName string `gorm:"size:255"                 json:"product_name"`
	Quantity    int    `gorm:"default:1"                json:"quantity"`
	Price       int64  `gorm:"not null"                 json:"price"`
	LineTotal   int64  `gorm:"not null"                 json:"line_total"`
}
