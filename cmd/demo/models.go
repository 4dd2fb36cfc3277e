package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tomopy03/gorm-admin/fields"
	"gorm.io/gorm"
)

type productStatus string

const (
	statusDraft    productStatus = "draft"
	statusActive   productStatus = "active"
	statusArchived productStatus = "archived"
)

// AdminEnumChoices marks productStatus as an enumerated column type.
func (productStatus) AdminEnumChoices() []fields.Choice {
	return []fields.Choice{
		{Value: string(statusDraft), Label: "Draft"},
		{Value: string(statusActive), Label: "Active"},
		{Value: string(statusArchived), Label: "Archived"},
	}
}

// Category groups products.
type Category struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:120;not null"`
	Products []Product
}

// Product is the main demo model; its columns cover most of the field
// taxonomy.
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code         string          `gorm:"size:64;uniqueIndex;not null"`
	Name         string          `gorm:"size:200;not null"`
	Summary      string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status       productStatus   `gorm:"size:16;default:'draft'"`
	Tags         []string        `gorm:"serializer:json"`
	Photo        fields.Image
	SupportEmail string `gorm:"size:200" admin:"type:email;label:Support email"`
	CategoryID   *uint
	Category     *Category
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns the primary key; the demo runs on sqlite where
// there is no server-side uuid default.
func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := Category{Name: "Books"}
	games := Category{Name: "Games"}
	if err := db.Create(&books).Error; err != nil {
		return err
	}
	if err := db.Create(&games).Error; err != nil {
		return err
	}

	products := []Product{
		{
			Code:         "BK-001",
			Name:         "The Go Programming Language",
			Summary:      "Reference book",
			Price:        decimal.NewFromFloat(39.99),
			Status:       statusActive,
			Tags:         []string{"go", "programming"},
			SupportEmail: "books@example.com",
			CategoryID:   &books.ID,
		},
		{
			Code:       "GM-001",
			Name:       "Chess Set",
			Price:      decimal.NewFromFloat(24.50),
			Status:     statusDraft,
			Tags:       []string{"board", "classic"},
			CategoryID: &games.ID,
		},
	}
	return db.Create(&products).Error
}
