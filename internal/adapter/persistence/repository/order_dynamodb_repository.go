package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type orderItem struct {
	ID            string   `dynamodbav:"id"`
	UserID        string   `dynamodbav:"user_id"`
	UserEmail     string   `dynamodbav:"user_email"`
	UserName      string   `dynamodbav:"user_name"`
	PlanName      string   `dynamodbav:"plan_name"`
	PlanPrice     string   `dynamodbav:"plan_price"`
	PlanFeatures  []string `dynamodbav:"plan_features,omitempty"`
	DomainName    string   `dynamodbav:"domain_name,omitempty"`
	Requirements  string   `dynamodbav:"requirements,omitempty"`
	TotalAmount   string   `dynamodbav:"total_amount"`
	PaidAmount    string   `dynamodbav:"paid_amount"`
	DueAmount     string   `dynamodbav:"due_amount"`
	PaymentStatus string   `dynamodbav:"payment_status"`
	PaymentMethod string   `dynamodbav:"payment_method,omitempty"`
	Status        string   `dynamodbav:"status"`
	AdminNotes    string   `dynamodbav:"admin_notes,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Both listings come back newest first; the customer listing resolves
// through the GSI, the admin listing scans the table.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ApplyUpdate(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	expr := "SET"
	vals := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}
	add := func(attr string, av types.AttributeValue) {
		if len(vals) > 0 {
			expr += ","
		}
		expr += " #" + attr + " = :" + attr
		vals[":"+attr] = av
		names["#"+attr] = attr
	}

	if upd.Status != nil {
		add("status", &types.AttributeValueMemberS{Value: string(*upd.Status)})
	}
	if upd.PaymentStatus != nil {
		add("payment_status", &types.AttributeValueMemberS{Value: string(*upd.PaymentStatus)})
	}
	if upd.PaidAmount != nil {
		add("paid_amount", &types.AttributeValueMemberS{Value: floatToString(*upd.PaidAmount)})
	}
	if upd.DueAmount != nil {
		add("due_amount", &types.AttributeValueMemberS{Value: floatToString(*upd.DueAmount)})
	}
	if upd.AdminNotes != nil {
		add("admin_notes", &types.AttributeValueMemberS{Value: *upd.AdminNotes})
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		UserEmail:     o.UserEmail,
		UserName:      o.UserName,
		PlanName:      o.PlanName,
		PlanPrice:     floatToString(o.PlanPrice),
		PlanFeatures:  o.PlanFeatures,
		DomainName:    o.DomainName,
		Requirements:  o.Requirements,
		TotalAmount:   floatToString(o.TotalAmount),
		PaidAmount:    floatToString(o.PaidAmount),
		DueAmount:     floatToString(o.DueAmount),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		AdminNotes:    o.AdminNotes,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	planPrice, _ := strconv.ParseFloat(it.PlanPrice, 64)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	paid, _ := strconv.ParseFloat(it.PaidAmount, 64)
	due, _ := strconv.ParseFloat(it.DueAmount, 64)
	return entities.Order{
		ID:            it.ID,
		UserID:        it.UserID,
		UserEmail:     it.UserEmail,
		UserName:      it.UserName,
		PlanName:      it.PlanName,
		PlanPrice:     planPrice,
		PlanFeatures:  it.PlanFeatures,
		DomainName:    it.DomainName,
		Requirements:  it.Requirements,
		TotalAmount:   total,
		PaidAmount:    paid,
		DueAmount:     due,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod: it.PaymentMethod,
		Status:        entities.OrderStatus(it.Status),
		AdminNotes:    it.AdminNotes,
		CreatedAt:     createdAt,
	}
}
