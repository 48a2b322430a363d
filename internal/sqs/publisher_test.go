package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSQSClient is a mock implementation of the SQS client for testing.
type mockSQSClient struct {
	sendMessageFunc func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, params, optFns...)
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestPublisher_PublishProductMessage(t *testing.T) {
	t.Run("successful message publish", func(t *testing.T) {
		// given
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/catalog-events"
		ctx := context.Background()

		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				assert.Equal(t, queueURL, *params.QueueUrl)
				require.NotNil(t, params.MessageBody)

				var sent ProductMessage
				require.NoError(t, json.Unmarshal([]byte(*params.MessageBody), &sent))
				assert.Equal(t, "created", sent.Action)
				assert.Equal(t, "shop-1", sent.ShopID)

				return &sqs.SendMessageOutput{
					MessageId: aws.String("test-message-id"),
				}, nil
			},
		}

		publisher := NewPublisher(mockClient, queueURL)

		msg := ProductMessage{
			Action:    "created",
			ProductID: "123",
			ShopID:    "shop-1",
			Title:     "Linen Shirt",
			ImageURL:  "/uploads/1.png",
		}

		// when
		err := publisher.PublishProductMessage(ctx, msg)

		// then
		require.NoError(t, err)
	})

	t.Run("error sending message", func(t *testing.T) {
		// given
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/catalog-events"
		ctx := context.Background()

		expectedErr := errors.New("failed to send message")
		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, _ *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				return nil, expectedErr
			},
		}

		publisher := NewPublisher(mockClient, queueURL)

		msg := ProductMessage{
			Action:    "created",
			ProductID: "123",
			ShopID:    "shop-1",
			Title:     "Linen Shirt",
			ImageURL:  "/uploads/1.png",
		}

		// when
		err := publisher.PublishProductMessage(ctx, msg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}

func TestNewPublisher(t *testing.T) {
	t.Run("creates publisher successfully", func(t *testing.T) {
		// given
		mockClient := &mockSQSClient{}
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/catalog-events"

		// when
		publisher := NewPublisher(mockClient, queueURL)

		// then
		require.NotNil(t, publisher)
		assert.Equal(t, queueURL, publisher.queueURL)
	})
}
