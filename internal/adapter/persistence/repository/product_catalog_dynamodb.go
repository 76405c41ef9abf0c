package repository

import (
	"context"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type productItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Brand    string `dynamodbav:"brand,omitempty"`
	Category string `dynamodbav:"category,omitempty"`
	Unit     string `dynamodbav:"unit,omitempty"`
	Price    string `dynamodbav:"price"`
}

// ProductCatalogDynamo reads the catalog table shared with the inventory
// service. The workflow never writes to it.
type ProductCatalogDynamo struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductCatalog = (*ProductCatalogDynamo)(nil)

func NewProductCatalogDynamo(ddb *dynamodb.Client, tableName string) *ProductCatalogDynamo {
	return &ProductCatalogDynamo{ddb: ddb, tableName: tableName}
}

func (c *ProductCatalogDynamo) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := getByID(ctx, c.ddb, c.tableName, id, &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:       it.ID,
		Name:     it.Name,
		Brand:    it.Brand,
		Category: it.Category,
		Unit:     it.Unit,
		Price:    parseDecimal(it.Price),
	}
}
