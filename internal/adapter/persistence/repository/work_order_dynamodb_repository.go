package repository

import (
	"context"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type workOrderItem struct {
	ID              string  `dynamodbav:"id"`
	Code            string  `dynamodbav:"code"`
	Status          string  `dynamodbav:"status"`
	MaintenanceType string  `dynamodbav:"maintenance_type"`
	Description     string  `dynamodbav:"description"`
	EstimatedHours  float64 `dynamodbav:"estimated_hours"`
	VehicleID       string  `dynamodbav:"vehicle_id,omitempty"`
	CustomerID      string  `dynamodbav:"customer_id,omitempty"`
	OpenedAt        string  `dynamodbav:"opened_at"`
	ClosedAt        string  `dynamodbav:"closed_at,omitempty"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update rewrites the whole row; callers hold the work order lock.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toWorkOrderItem(o)); err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toWorkOrderItem(o))
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:              o.ID,
		Code:            o.Code,
		Status:          string(o.Status),
		MaintenanceType: string(o.MaintenanceType),
		Description:     o.Description,
		EstimatedHours:  o.EstimatedHours,
		VehicleID:       o.VehicleID,
		CustomerID:      o.CustomerID,
		OpenedAt:        formatTime(o.OpenedAt),
		ClosedAt:        formatTimePtr(o.ClosedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:              it.ID,
		Code:            it.Code,
		Status:          entities.WorkOrderStatus(it.Status),
		MaintenanceType: entities.MaintenanceType(it.MaintenanceType),
		Description:     it.Description,
		EstimatedHours:  it.EstimatedHours,
		VehicleID:       it.VehicleID,
		CustomerID:      it.CustomerID,
		OpenedAt:        parseTime(it.OpenedAt),
		ClosedAt:        parseTimePtr(it.ClosedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
