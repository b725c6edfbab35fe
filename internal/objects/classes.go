package objects

import (
	"github.com/shopspring/decimal"
)

// Class names as stored in the data_objects.class column.
const (
	ClassArticle = "article"
	ClassProduct = "product"
	ClassFolder  = "folder"
)

// Content is implemented by classes that can be rendered with a title.
type Content interface {
	DataObject
	GetTitle() string
}

type Article struct {
	Base

	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

func (a *Article) GetTitle() string {
	return a.Title
}

type Product struct {
	Base

	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}

type Folder struct {
	Base

	Title string `json:"title"`
}

func (f *Folder) GetTitle() string {
	return f.Title
}
