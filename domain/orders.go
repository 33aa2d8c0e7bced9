package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CREATE TABLE public.orders (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     status       TEXT NOT NULL,
//     total_amount NUMERIC(12,2) NOT NULL,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );
//
// CREATE TABLE public.order_items (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     order_id   BIGINT NOT NULL REFERENCES orders(id),
//     product_id BIGINT NOT NULL,
//     quantity   INTEGER NOT NULL,
//     unit_price NUMERIC(12,2) NOT NULL
// );

// Order is read-only to this service: it exists so the co-purchase
// recommender can scan historical purchases. UnitPrice is the price at the
// time of purchase, not the current product price.
type Order struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Status      string          `gorm:"column:status;type:text;not null"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `gorm:"column:order_id;not null"`
	ProductID uint64          `gorm:"column:product_id;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
