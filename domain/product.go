package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     description TEXT,
//     price       NUMERIC(12,2) NOT NULL,
//     category    TEXT,
//     brand       TEXT,
//     colors      JSONB,
//     stock       INTEGER NOT NULL DEFAULT 0,
//     status      TEXT NOT NULL DEFAULT 'ACTIVE',
//     images      JSONB,
//     store_id    UUID,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

const (
	ProductStatusActive     = "ACTIVE"
	ProductStatusOutOfStock = "OUT_OF_STOCK"
	ProductStatusArchived   = "ARCHIVED"
)

type Product struct {
	ID          uint64                      `gorm:"primaryKey;autoIncrement"`
	Name        string                      `gorm:"column:name;type:text;not null"`
	Description string                      `gorm:"column:description;type:text"`
	Price       decimal.Decimal             `gorm:"column:price;type:numeric(12,2);not null"`
	Category    string                      `gorm:"column:category;type:text"`
	Brand       string                      `gorm:"column:brand;type:text"`
	Colors      datatypes.JSONSlice[string] `gorm:"column:colors"`
	Stock       int                         `gorm:"column:stock;default:0"`
	Status      string                      `gorm:"column:status;type:text;default:ACTIVE"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images"`
	StoreID     uuid.UUID                   `gorm:"column:store_id;type:uuid"`
	CreatedAt   time.Time                   `gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}
