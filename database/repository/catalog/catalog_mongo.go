package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"homigo/database"
	"homigo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("homigo")
	repo := &MongoCatalogRepo{
		services:   db.Collection("services"),
		categories: db.Collection("categories"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.services.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categoryId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

// GetServiceByID retrieves a catalog service by id.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.CatalogService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.CatalogService
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices retrieves all catalog services.
func (r *MongoCatalogRepo) ListServices() ([]models.CatalogService, error) {
	return r.listServices(bson.M{})
}

// ListServicesByCategory retrieves catalog services under a category.
func (r *MongoCatalogRepo) ListServicesByCategory(categoryID string) ([]models.CatalogService, error) {
	return r.listServices(bson.M{"categoryId": categoryID})
}

func (r *MongoCatalogRepo) listServices(filter bson.M) ([]models.CatalogService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.CatalogService
	for cursor.Next(ctx) {
		var svc models.CatalogService
		if err := cursor.Decode(&svc); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		out = append(out, svc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading services: %w", err)
	}
	return out, nil
}

// ListCategories retrieves all categories.
func (r *MongoCatalogRepo) ListCategories() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Category
	for cursor.Next(ctx) {
		var cat models.Category
		if err := cursor.Decode(&cat); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		out = append(out, cat)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading categories: %w", err)
	}
	return out, nil
}

// CreateService inserts a new catalog service.
func (r *MongoCatalogRepo) CreateService(svc *models.CatalogService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}
