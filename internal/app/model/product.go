package model

type ProductCategory string

const (
	CategoryIndoor  ProductCategory = "indoor"
	CategoryOffice  ProductCategory = "office"
	CategoryOutdoor ProductCategory = "outdoor"
)

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    int64           `json:"price"` // 원 단위 (whole KRW)
	Category ProductCategory `json:"category"`
	Icon     string          `json:"icon"` // opaque presentation reference
}

// CategoryGroup is one category label with its products in catalog order.
type CategoryGroup struct {
	Category ProductCategory `json:"category"`
	Products []Product       `json:"products"`
}
