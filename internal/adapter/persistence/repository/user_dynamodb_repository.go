package repository

import (
	"context"
	"time"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	Name         string `dynamodbav:"name"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists user accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	if tableName == "" {
		tableName = defaultUsersTableName
	}
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.UserRecord) (entities.UserRecord, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.UserRecord{}, err
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
		return entities.UserRecord{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserRecord{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserRecord{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.UserRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.UserRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.UserRecord{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.UserRecord{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.UserRecord) userItem {
	return userItem{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.UserRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.UserRecord{
		ID:           it.ID,
		Email:        it.Email,
		Name:         it.Name,
		PasswordHash: it.PasswordHash,
		CreatedAt:    createdAt,
	}
}
