package repository

import (
	"context"
	"testing"
	"time"

	"laporan_zakat/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo answers the calls a test configures; anything else panics via
// the nil embedded interface.
type fakeDynamo struct {
	DynamoDBAPI

	updateOut *dynamodb.UpdateItemOutput
	updateIn  *dynamodb.UpdateItemInput
	getOut    *dynamodb.GetItemOutput
	scanOut   *dynamodb.ScanOutput
	deleteErr error
	putIn     *dynamodb.PutItemInput
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	return f.updateOut, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getOut, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scanOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, _ *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, f.deleteErr
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, nil
}

func marshalReport(t *testing.T, r entities.DonationReport) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toReportItem(r))
	require.NoError(t, err)
	return av
}

func TestReportDynamoRepository_NextID(t *testing.T) {
	ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{
		Attributes: map[string]types.AttributeValue{"value": &types.AttributeValueMemberN{Value: "3"}},
	}}
	repo := NewReportDynamoRepository(ddb, "reports", "counters")

	id, err := repo.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, "counters", aws.ToString(ddb.updateIn.TableName))
	assert.Equal(t, "ADD #value :one", aws.ToString(ddb.updateIn.UpdateExpression))
}

func TestReportDynamoRepository_GetByID(t *testing.T) {
	created := time.Date(2024, 4, 8, 10, 0, 0, 0, time.UTC)
	want := entities.DonationReport{ID: 1, OperatorCode: "R001", DonorName: "Ahmad Subagja", DonationType: entities.DonationTypeFitrah, Amount: 45000, Attachment: "bukti-ahmad.png", CreatedAt: created}

	ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: marshalReport(t, want)}}
	repo := NewReportDynamoRepository(ddb, "reports", "counters")

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ddb.getOut = &dynamodb.GetItemOutput{}
	got, err = repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestReportDynamoRepository_ListSortsByID(t *testing.T) {
	ddb := &fakeDynamo{scanOut: &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
		marshalReport(t, entities.DonationReport{ID: 2, OperatorCode: "R002"}),
		marshalReport(t, entities.DonationReport{ID: 1, OperatorCode: "R001"}),
	}}}
	repo := NewReportDynamoRepository(ddb, "reports", "counters")

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestReportDynamoRepository_DeleteMissing(t *testing.T) {
	ddb := &fakeDynamo{deleteErr: &types.ConditionalCheckFailedException{Message: aws.String("missing")}}
	repo := NewReportDynamoRepository(ddb, "reports", "counters")

	ok, err := repo.Delete(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOperatorDynamoRepository_CreateKeepsHash(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewOperatorDynamoRepository(ddb, "operators")

	_, err := repo.Create(context.Background(), entities.Operator{OperatorCode: "R003", Secret: "$2a$hash", Role: entities.RoleStandard})
	require.NoError(t, err)

	var it operatorItem
	require.NoError(t, attributevalue.UnmarshalMap(ddb.putIn.Item, &it))
	assert.Equal(t, "R003", it.OperatorCode)
	assert.Equal(t, "$2a$hash", it.SecretHash)
	assert.Equal(t, "attribute_not_exists(#code)", aws.ToString(ddb.putIn.ConditionExpression))
}
