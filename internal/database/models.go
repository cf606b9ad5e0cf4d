package database

import "time"

// Customer represents a registered customer with one-to-many Orders.
// Email is unique across all customers.
type Customer struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:200;not null;index"`
	Email     string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`

	Orders []Order `gorm:"foreignKey:CustomerID"`
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// Order represents a purchase belonging to exactly one Customer.
//
// TotalCost is derived at creation time as the sum of unit_price * quantity
// over the order's items; it is never client-supplied.
type Order struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"not null;index"`
	TotalCost  float64   `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for the Order model.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order: a catalog name, a price, and a quantity.
// Its lifetime is bound to the owning Order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ItemName  string  `gorm:"size:255;not null"`
	UnitPrice float64 `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
}

// TableName specifies the table name for the OrderItem model.
func (OrderItem) TableName() string {
	return "order_items"
}
