package admin

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/tomopy03/gorm-admin/fields"
)

func parseTestSchema(t *testing.T, model any) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse(model, schemaCache, namer)
	require.NoError(t, err)
	return sch
}

type articleStatus string

func (articleStatus) AdminEnumChoices() []fields.Choice {
	return []fields.Choice{
		{Value: "draft", Label: "Draft"},
		{Value: "published", Label: "Published"},
	}
}

type priority int

func (priority) AdminEnumChoices() []fields.Choice {
	return []fields.Choice{
		{Value: 1, Label: "Low"},
		{Value: 2, Label: "High"},
	}
}

type Author struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:120;not null"`
	Email    string `gorm:"size:200" admin:"type:email"`
	Articles []Article
}

type Article struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string          `gorm:"size:200;not null"`
	Body        string          `gorm:"type:text"`
	Rating      decimal.Decimal `gorm:"type:numeric(4,2)"`
	Views       int64
	Draft       bool          `gorm:"not null"`
	Status      articleStatus `gorm:"size:16;default:'draft'"`
	Urgency     priority
	Keywords    []string `gorm:"serializer:json"`
	Cover       fields.Image
	Attachments fields.Files
	PublishedOn time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	Secret      string `admin:"-"`
	AuthorID    *uint
	Author      *Author
}

type Blackboard struct {
	ID   uint       `gorm:"primaryKey;autoIncrement"`
	Grid [][]string `gorm:"serializer:json"`
}
