package repository

import (
	"context"
	"sort"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type operatorItem struct {
	OperatorCode     string `dynamodbav:"operator_code"`
	SecretHash       string `dynamodbav:"secret_hash"`
	Name             string `dynamodbav:"name"`
	OrganizationName string `dynamodbav:"organization_name"`
	Description      string `dynamodbav:"description"`
	Role             string `dynamodbav:"role"`
}

// OperatorDynamoRepository persists Operator entities in DynamoDB.
//
// Table requirements:
//   - PK: operator_code (string)
type OperatorDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOperatorRepository = (*OperatorDynamoRepository)(nil)

func NewOperatorDynamoRepository(ddb DynamoDBAPI, tableName string) *OperatorDynamoRepository {
	return &OperatorDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OperatorDynamoRepository) Create(ctx context.Context, o entities.Operator) (entities.Operator, error) {
	av, err := attributevalue.MarshalMap(toOperatorItem(o))
	if err != nil {
		return entities.Operator{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{"#code": "operator_code"},
	})
	if err != nil {
		return entities.Operator{}, err
	}
	return o, nil
}

func (r *OperatorDynamoRepository) GetByCode(ctx context.Context, operatorCode string) (entities.Operator, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"operator_code": &types.AttributeValueMemberS{Value: operatorCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Operator{}, err
	}
	if len(out.Item) == 0 {
		return entities.Operator{}, nil
	}
	var it operatorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Operator{}, err
	}
	return fromOperatorItem(it), nil
}

func (r *OperatorDynamoRepository) List(ctx context.Context) ([]entities.Operator, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Operator, 0, len(raw))
	for _, item := range raw {
		var it operatorItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromOperatorItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OperatorCode < out[j].OperatorCode })
	return out, nil
}

func toOperatorItem(o entities.Operator) operatorItem {
	return operatorItem{
		OperatorCode:     o.OperatorCode,
		SecretHash:       o.Secret,
		Name:             o.Name,
		OrganizationName: o.OrganizationName,
		Description:      o.Description,
		Role:             string(o.Role),
	}
}

func fromOperatorItem(it operatorItem) entities.Operator {
	return entities.Operator{
		OperatorCode:     it.OperatorCode,
		Secret:           it.SecretHash,
		Name:             it.Name,
		OrganizationName: it.OrganizationName,
		Description:      it.Description,
		Role:             entities.Role(it.Role),
	}
}
