package infra

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"ticket-archiver/domain/model"
)

type DynamoDB struct {
	db        *dynamodb.Client
	tableName string
}

func NewDynamoDB(tableName string, local bool) (*DynamoDB, error) {
	if tableName == "" {
		tableName = "ticket_archives"
	}
	var db *dynamodb.Client
	if local {
		cfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion("dummy"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}
		db = dynamodb.NewFromConfig(cfg,
			func(o *dynamodb.Options) {
				o.BaseEndpoint = aws.String("http://localhost:8000")
			},
		)
	} else {
		cfg, err := config.LoadDefaultConfig(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}
		db = dynamodb.NewFromConfig(cfg)
	}
	d := &DynamoDB{
		db:        db,
		tableName: tableName,
	}
	if local {
		if err := d.EnsureTable(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

const (
	waitInterval = 2 * time.Second // ポーリング間隔
	maxRetries   = 30              // 最大リトライ回数 (30回 = 約1分)
)

func (d *DynamoDB) EnsureTable() error {
	_, err := d.db.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	if err == nil {
		// テーブルが既に存在する
		return nil
	}

	if err := d.createTable(); err != nil {
		return err
	}

	// テーブルがACTIVEになるまで待機
	for i := 0; i < maxRetries; i++ {
		out, err := d.db.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
			TableName: aws.String(d.tableName),
		})
		if err != nil {
			return fmt.Errorf("failed to describe table %s: %v", d.tableName, err)
		}

		if out.Table.TableStatus == types.TableStatusActive {
			return nil
		}

		time.Sleep(waitInterval)
	}

	return fmt.Errorf("table %s creation timed out", d.tableName)
}

func (d *DynamoDB) createTable() error {
	input := &dynamodb.CreateTableInput{
		TableName: aws.String(d.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("ticket_name"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("ticket_name"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(5),
			WriteCapacityUnits: aws.Int64(5),
		},
	}

	if _, err := d.db.CreateTable(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to create table %s: %v", d.tableName, err)
	}
	return nil
}

func (d *DynamoDB) SaveArchive(archive *model.TicketArchive) (string, error) {
	createdAt := timeNow().Format(time.RFC3339Nano)
	input := &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item: map[string]types.AttributeValue{
			"ticket_name":    &types.AttributeValueMemberS{Value: archive.TicketName},
			"created_at":     &types.AttributeValueMemberS{Value: createdAt},
			"status":         &types.AttributeValueMemberS{Value: archive.Status},
			"panel":          &types.AttributeValueMemberS{Value: archive.Panel},
			"owner":          &types.AttributeValueMemberS{Value: archive.Owner},
			"message_count":  &types.AttributeValueMemberN{Value: strconv.Itoa(archive.MessageCount)},
			"transcript_url": &types.AttributeValueMemberS{Value: archive.TranscriptURL},
			"excerpt":        &types.AttributeValueMemberS{Value: archive.Excerpt},
			"summary":        &types.AttributeValueMemberS{Value: archive.Summary},
		},
	}

	if _, err := d.db.PutItem(context.TODO(), input); err != nil {
		return "", err
	}
	return fmt.Sprintf("dynamodb://%s/%s/%s", d.tableName, archive.TicketName, createdAt), nil
}

func (d *DynamoDB) SaveArchiveMinimal(archive *model.TicketArchive) (string, error) {
	createdAt := timeNow().Format(time.RFC3339Nano)
	input := &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item: map[string]types.AttributeValue{
			"ticket_name": &types.AttributeValueMemberS{Value: archive.TicketName},
			"created_at":  &types.AttributeValueMemberS{Value: createdAt},
			"excerpt":     &types.AttributeValueMemberS{Value: archive.Excerpt},
		},
	}

	if _, err := d.db.PutItem(context.TODO(), input); err != nil {
		return "", err
	}
	return fmt.Sprintf("dynamodb://%s/%s/%s", d.tableName, archive.TicketName, createdAt), nil
}
