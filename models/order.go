package models

import "time"

// Order is the server-owned record of a placed order. The order service is
// the single writer; rows stored here are a local mirror so the orders list
// and the status monitor do not have to refetch everything. Total is always
// the server's figure, never recomputed client-side.
type Order struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	OrderNumber       string      `gorm:"type:varchar(40);uniqueIndex" json:"orderNumber"`
	RestaurantID      int64       `gorm:"not null;index" json:"restaurantId"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Total             float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status            OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DeliveryAddress   string      `gorm:"type:text" json:"deliveryAddress"`
	OrderDate         time.Time   `json:"orderDate"`
	EstimatedDelivery *time.Time  `json:"estimatedDelivery,omitempty"`
	SessionKey        string      `gorm:"type:varchar(64);index" json:"-"`
	Authenticated     bool        `json:"-"`
	CreatedAt         time.Time   `json:"-"`
	UpdatedAt         time.Time   `json:"-"`
}

// OrderItem is one line of an order with the unit price captured at order
// time.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"not null;index" json:"-"`
	MenuItemID int64   `gorm:"not null" json:"menuItemId"`
	Name       string  `gorm:"type:varchar(255)" json:"name"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int     `gorm:"not null" json:"quantity"`
}
