package repository

import "github.com/ikkim/chorokshop-backend/internal/app/model"

// defaultCatalog is the storefront's entire inventory. The list is fixed at
// build time; its order here is the order FindAll presents to clients.
var defaultCatalog = []model.Product{
	{ID: "monstera", Name: "몬스테라", Price: 25000, Category: model.CategoryIndoor, Icon: "🌿"},
	{ID: "stuckyi", Name: "스투키", Price: 15000, Category: model.CategoryIndoor, Icon: "🪴"},
	{ID: "table-palm", Name: "테이블야자", Price: 12000, Category: model.CategoryOffice, Icon: "🌴"},
	{ID: "spathiphyllum", Name: "스파티필럼", Price: 18000, Category: model.CategoryOffice, Icon: "🌼"},
	{ID: "olive-tree", Name: "올리브나무", Price: 45000, Category: model.CategoryOutdoor, Icon: "🫒"},
	{ID: "rosemary", Name: "로즈마리", Price: 9000, Category: model.CategoryOutdoor, Icon: "🌱"},
}

// DefaultCatalog returns a copy of the built-in product list in display order.
func DefaultCatalog() []model.Product {
	products := make([]model.Product, len(defaultCatalog))
	copy(products, defaultCatalog)
	return products
}
