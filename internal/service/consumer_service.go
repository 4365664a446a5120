package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedExerciseMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Indexing exercise %s into knowledge base", payload.ExerciseId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	exercise, err := uow.DictionaryRepository().GetExerciseById(ctx, payload.ExerciseId)
	if err != nil {
		log.Printf("[ERROR] Failed to get exercise %s: %v", payload.ExerciseId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if exercise == nil {
		log.Printf("[ERROR] Exercise not found: %s", payload.ExerciseId)
		msg.Ack() // Exercise deleted? Ack.
		return
	}

	content := BuildExerciseDocument(exercise)

	res, err := cs.embeddingProvider.Generate(content, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for exercise %s: %v", payload.ExerciseId, err)
		msg.Nack()
		return
	}

	exerciseId := exercise.Id
	item := &entity.KnowledgeItem{
		Id:          uuid.New(),
		SourceType:  entity.KnowledgeSourceExercise,
		SourceId:    &exerciseId,
		ContentText: content,
		Embedding:   res.Embedding.Values,
		Metadata: map[string]interface{}{
			"name":         exercise.Name,
			"muscle_group": exercise.MuscleGroup,
		},
		CreatedAt: time.Now(),
	}

	if err := uow.KnowledgeItemRepository().Create(ctx, item); err != nil {
		log.Printf("[ERROR] Failed to store knowledge item for exercise %s: %v", payload.ExerciseId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Exercise indexed: %s (%s)", exercise.Name, payload.ExerciseId)
	msg.Ack()
}

// BuildExerciseDocument renders a catalog exercise as the text that gets
// embedded. Kept deterministic so re-ingestion produces stable vectors.
func BuildExerciseDocument(exercise *entity.Exercise) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Exercise: %s\n", exercise.Name))
	b.WriteString(fmt.Sprintf("Muscle Group: %s\n", exercise.MuscleGroup))
	if exercise.MachineTypeId != nil {
		b.WriteString(fmt.Sprintf("Equipment: %s\n", *exercise.MachineTypeId))
	}
	if exercise.Description != nil && *exercise.Description != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", *exercise.Description))
	}
	return b.String()
}
