package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	reportsOperatorCodeIndex = "operator_code-index"
	reportsCounterName       = "reports"
)

type reportItem struct {
	ID           int64  `dynamodbav:"id"`
	OperatorCode string `dynamodbav:"operator_code"`
	DonorName    string `dynamodbav:"donor_name"`
	DonationType string `dynamodbav:"donation_type"`
	Amount       int64  `dynamodbav:"amount"`
	Attachment   string `dynamodbav:"attachment"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ReportDynamoRepository persists DonationReport entities in DynamoDB.
//
// Table requirements:
//   - reports table PK: id (number), GSI operator_code-index (PK: operator_code)
//   - counters table PK: name (string); the "reports" row holds the last issued id
type ReportDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	countersTable string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb DynamoDBAPI, tableName, countersTable string) *ReportDynamoRepository {
	return &ReportDynamoRepository{ddb: ddb, tableName: tableName, countersTable: countersTable}
}

// NextID atomically increments the report counter. Ids are never reused.
func (r *ReportDynamoRepository) NextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: reportsCounterName},
		},
		UpdateExpression:          aws.String("ADD #value :one"),
		ExpressionAttributeNames:  map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q returned no value", reportsCounterName)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.DonationReport) (entities.DonationReport, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.DonationReport{}, err
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
		return entities.DonationReport{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id int64) (entities.DonationReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            reportKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DonationReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.DonationReport{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DonationReport{}, err
	}
	return fromReportItem(it), nil
}

// List returns every report ordered by id.
func (r *ReportDynamoRepository) List(ctx context.Context) ([]entities.DonationReport, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return decodeReports(raw)
}

func (r *ReportDynamoRepository) ListByOperatorCode(ctx context.Context, operatorCode string) ([]entities.DonationReport, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reportsOperatorCodeIndex),
		KeyConditionExpression: aws.String("operator_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: operatorCode},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeReports(raw)
}

// Update replaces a stored report. A missing id yields the zero value.
func (r *ReportDynamoRepository) Update(ctx context.Context, rep entities.DonationReport) (entities.DonationReport, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.DonationReport{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.DonationReport{}, nil
		}
		return entities.DonationReport{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      reportKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func reportKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func decodeReports(raw []map[string]types.AttributeValue) ([]entities.DonationReport, error) {
	out := make([]entities.DonationReport, 0, len(raw))
	for _, item := range raw {
		var it reportItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromReportItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func toReportItem(r entities.DonationReport) reportItem {
	return reportItem{
		ID:           r.ID,
		OperatorCode: r.OperatorCode,
		DonorName:    r.DonorName,
		DonationType: string(r.DonationType),
		Amount:       r.Amount,
		Attachment:   r.Attachment,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReportItem(it reportItem) entities.DonationReport {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.DonationReport{
		ID:           it.ID,
		OperatorCode: it.OperatorCode,
		DonorName:    it.DonorName,
		DonationType: entities.DonationType(it.DonationType),
		Amount:       it.Amount,
		Attachment:   it.Attachment,
		CreatedAt:    createdAt,
	}
}
