package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns a message describing the hand after a roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetRoundResultMessage returns a message announcing the end of a round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)
}
