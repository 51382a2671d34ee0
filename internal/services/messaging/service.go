package messaging

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
)

// service implements the Service interface
type service struct {
	diceRoller  dice.Roller
	defaultTone MessageTone
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	if config.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	tone := config.DefaultTone
	if tone == "" {
		tone = ToneFunny
	}

	return &service{
		diceRoller:  config.DiceRoller,
		defaultTone: tone,
	}, nil
}

// pick returns one of options using the dice roller as the source of chance
func (s *service) pick(options []string) string {
	return options[s.diceRoller.Roll(len(options))-1]
}

func (s *service) tone(preferred MessageTone) MessageTone {
	if preferred == "" {
		return s.defaultTone
	}
	return preferred
}

// GetRollResultMessage returns a message for the hand after a roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	player := fmt.Sprintf("Player %d", input.PlayerNumber)
	funny := s.tone(input.PreferredTone) == ToneFunny

	var title, message string

	switch input.Stage {
	case HandStageCrew:
		title = "Ship, Captain and Crew!"
		if funny {
			message = s.pick([]string{
				fmt.Sprintf("%s sets sail with %d in the hold!", player, input.Score),
				fmt.Sprintf("All hands aboard! %s is hauling %d cargo.", player, input.Score),
				fmt.Sprintf("%s loaded the boat. Cargo: %d. Pirates, take note.", player, input.Score),
			})
		} else {
			message = fmt.Sprintf("%s qualifies with a cargo score of %d.", player, input.Score)
		}
	case HandStageCaptain:
		title = "Captain aboard"
		if funny {
			message = s.pick([]string{
				fmt.Sprintf("%s has a ship and a captain. Now find someone to row.", player),
				fmt.Sprintf("The captain is on deck for %s. Crew wanted: must roll a 4.", player),
			})
		} else {
			message = fmt.Sprintf("%s holds the ship and captain and still needs a crew.", player)
		}
	case HandStageShip:
		title = "Ship ahoy"
		if funny {
			message = s.pick([]string{
				fmt.Sprintf("%s found a ship. Nobody is steering it yet.", player),
				fmt.Sprintf("A 6! %s has a boat. Captains wanted.", player),
			})
		} else {
			message = fmt.Sprintf("%s holds the ship and still needs a captain.", player)
		}
	default:
		title = "No ship"
		if funny {
			message = s.pick([]string{
				fmt.Sprintf("%s is still standing on the dock.", player),
				fmt.Sprintf("No 6 for %s. The harbour is empty.", player),
				fmt.Sprintf("%s is looking for a ship. Any ship.", player),
			})
		} else {
			message = fmt.Sprintf("%s has not found a ship.", player)
		}
	}

	if input.Stage != HandStageCrew && input.RollsLeft == 0 {
		message += " Out of rolls."
	}

	return &GetRollResultMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetRoundResultMessage returns a message for the end of a round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	title := fmt.Sprintf("Round %d is over", input.Round)
	funny := s.tone(input.PreferredTone) == ToneFunny

	switch len(input.Winners) {
	case 0:
		return &GetRoundResultMessageOutput{Title: title, Message: "Nobody sailed this round."}, nil
	case 1:
		winner := fmt.Sprintf("Player %d", input.Winners[0])
		message := fmt.Sprintf("%s wins the round with %d.", winner, input.HighScore)
		if funny {
			message = s.pick([]string{
				fmt.Sprintf("%s rules the seas with %d!", winner, input.HighScore),
				fmt.Sprintf("%s takes the round with %d. Everyone else walks the plank.", winner, input.HighScore),
			})
		}
		return &GetRoundResultMessageOutput{Title: title, Message: message}, nil
	}

	seats := make([]string, 0, len(input.Winners))
	for _, winner := range input.Winners {
		seats = append(seats, strconv.Itoa(winner))
	}
	names := "Players " + strings.Join(seats, ", ")

	message := fmt.Sprintf("%s share the round on %d.", names, input.HighScore)
	if funny {
		message = s.pick([]string{
			fmt.Sprintf("%s tie on %d. Shared wins for everyone on that boat!", names, input.HighScore),
			fmt.Sprintf("A fleet of winners! %s all hit %d.", names, input.HighScore),
		})
	}

	return &GetRoundResultMessageOutput{Title: title, Message: message}, nil
}
