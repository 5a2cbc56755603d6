package models

// Category groups related catalog services (e.g., "Appliance Repair").
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// CatalogService is a bookable task type belonging to a category.
// Immutable reference data.
type CatalogService struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name" binding:"required"`
	CategoryID string `bson:"categoryId" json:"categoryId" binding:"required"`
}
